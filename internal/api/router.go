package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	_ "go-inventory-report/docs"
	"go-inventory-report/internal/api/handler"
	"go-inventory-report/pkg/router"
)

func RegisterRoutes(r *router.Router, h *handler.Handler) {
	r.POST("/api/v1/datasets", h.UploadDataset)
	r.GET("/api/v1/datasets", h.ListDatasets)
	// More specific routes first
	r.GET("/api/v1/datasets/*/report", h.GetReport)
	r.GET("/api/v1/datasets/*/reports", h.ListReports)
	r.GET("/api/v1/datasets/*/aggregations/*", h.GetAggregation)
	r.POST("/api/v1/datasets/*/export", h.ExportDataset)
	// Generic dataset routes last
	r.GET("/api/v1/datasets/*", h.GetDataset)
	r.DELETE("/api/v1/datasets/*", h.DeleteDataset)

	r.GET("/api/v1/reports/*", h.GetStoredReport)
	r.GET("/api/v1/download/*/*", h.DownloadFile)

	r.Handle("/swagger/*", httpSwagger.WrapHandler)
}
