package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bsm/redislock"
	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/tracking_backend/config"
	"github.com/mmdatafocus/tracking_backend/tracking"
	"github.com/mmdatafocus/tracking_backend/utils"
	"github.com/sirupsen/logrus"
)

const regenerateLockKey = "lock:generate_data"

// LockProvider returns the shared lock client, or nil when Redis is not connected.
type LockProvider func() *redislock.Client

// RegisterRoutes mounts the tracking endpoints on r.
func RegisterRoutes(r gin.IRouter, svc *tracking.Service, locks LockProvider) {
	utils.RegisterJSONFieldNames()

	r.GET("/", RootHandler())
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.POST("/search", SearchHandler(svc))
	r.GET("/get_data", KeysHandler(svc))
	r.POST("/generate_data", GenerateHandler(svc, locks))
	r.POST("/export_csv", ExportCSVHandler(svc))
	r.GET("/export_csv", ExportStoreCSVHandler(svc))
	r.POST("/export_xlsx", ExportXLSXHandler(svc))
}

func RootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, MessageResponse{Message: welcomeMessage})
	}
}

func SearchHandler(svc *tracking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := intQuery(c, "page", tracking.DefaultPage, false)
		if !ok {
			return
		}
		size, ok := intQuery(c, "size", tracking.DefaultSize, false)
		if !ok {
			return
		}

		var req SearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			invalidRequest(c, "SearchHandler", err)
			return
		}

		res := svc.Search(c.Request.Context(), req.PiecePins, page, size)
		c.JSON(http.StatusOK, SearchResponse{Results: res.Results, Total: res.Total})
	}
}

func KeysHandler(svc *tracking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		keys := svc.Keys(c.Request.Context())
		if len(keys) == 0 {
			c.JSON(http.StatusOK, MessageResponse{Message: noDataMessage})
			return
		}
		c.JSON(http.StatusOK, KeysResponse{PiecePins: keys})
	}
}

// GenerateHandler replaces the store. When Redis is connected, replicas sharing it
// take a best-effort lock so two regenerations do not interleave; if the lock
// cannot be had the request proceeds without it.
func GenerateHandler(svc *tracking.Service, locks LockProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := config.GetLogger()

		count, ok := intQuery(c, "count", 0, true)
		if !ok {
			return
		}

		var lock *redislock.Lock
		if locks != nil {
			if locker := locks(); locker != nil {
				var err error
				lock, err = locker.Obtain(c.Request.Context(), regenerateLockKey, 30*time.Second, nil)
				if err != nil {
					msg := "error obtaining redis lock; proceeding without redis lock: " + err.Error()
					if errors.Is(err, redislock.ErrNotObtained) {
						msg = "could not obtain redis lock; proceeding without redis lock"
					}
					logger.WithFields(logrus.Fields{
						"field": "GenerateHandler",
						"count": count,
					}).Warn(msg)
					lock = nil
				}
			}
		}
		defer func() {
			if lock == nil {
				return
			}
			if releaseErr := lock.Release(c.Request.Context()); releaseErr != nil {
				logger.WithFields(logrus.Fields{
					"field": "GenerateHandler",
				}).Warn("failed to release redis lock: " + releaseErr.Error())
			}
		}()

		if _, err := svc.Regenerate(c.Request.Context(), count); err != nil {
			if errors.Is(err, tracking.ErrCountOutOfRange) {
				lo, hi := 0, svc.MaxGenerateCount
				c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
					Error:  tracking.ErrCountOutOfRange.Error(),
					Fields: map[string]string{"count": "range"},
					Min:    &lo,
					Max:    &hi,
				})
				return
			}
			config.LogError(logger, "handlers", "GenerateHandler", "Regenerate", count, err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: fmt.Sprintf("Generated %d data entries", count)})
	}
}

func ExportCSVHandler(svc *tracking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ExportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			invalidRequest(c, "ExportCSVHandler", err)
			return
		}
		table := svc.ExportRows(c.Request.Context(), req.PiecePins, req.Columns)
		writeCSV(c, table)
	}
}

// ExportStoreCSVHandler exports every record in the store. An optional
// comma-separated columns query narrows the header.
func ExportStoreCSVHandler(svc *tracking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var columns []string
		if raw, ok := c.GetQuery("columns"); ok {
			columns = config.SplitAndTrim(raw)
		}
		table := svc.ExportRows(c.Request.Context(), nil, columns)
		writeCSV(c, table)
	}
}

func ExportXLSXHandler(svc *tracking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ExportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			invalidRequest(c, "ExportXLSXHandler", err)
			return
		}
		table := svc.ExportRows(c.Request.Context(), req.PiecePins, req.Columns)

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", "attachment; filename="+tracking.XLSXFilename)
		c.Status(http.StatusOK)
		if err := tracking.WriteXLSX(c.Writer, table); err != nil {
			config.LogError(config.GetLogger(), "handlers", "ExportXLSXHandler", "WriteXLSX", nil, err)
			_ = c.Error(err)
		}
	}
}

func writeCSV(c *gin.Context, table tracking.ExportTable) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename="+tracking.CSVFilename)
	c.Status(http.StatusOK)
	if err := tracking.WriteCSV(c.Writer, table); err != nil {
		config.LogError(config.GetLogger(), "handlers", "writeCSV", "WriteCSV", nil, err)
		_ = c.Error(err)
	}
}

// intQuery reads an integer query parameter. On a bad or missing required
// value it writes a 422 and returns false.
func intQuery(c *gin.Context, name string, def int, required bool) (int, bool) {
	raw, present := c.GetQuery(name)
	raw = strings.TrimSpace(raw)
	if !present || raw == "" {
		if required {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:  "invalid request",
				Fields: map[string]string{name: "required"},
			})
			return 0, false
		}
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:  "invalid request",
			Fields: map[string]string{name: "int"},
		})
		return 0, false
	}
	return n, true
}

func invalidRequest(c *gin.Context, funcName string, err error) {
	fields := utils.ProcessValidationErrors(err)
	config.GetLogger().WithFields(logrus.Fields{
		"field":  funcName,
		"errors": fields,
	}).Debug("invalid request: " + err.Error())
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:  "invalid request",
		Fields: fields,
	})
}
