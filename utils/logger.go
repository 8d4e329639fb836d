package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"masterdataapi/config"
	"masterdataapi/pkg/logger"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gin-gonic/gin"
)

func createLoggerWriter(filePath string) (io.Writer, error) {
	dir := filepath.Dir(filePath)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %v", err)
	}

	logFile := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	return logFile, nil
}

// NewCustomLogger creates a standalone rotating-file logger.
func NewCustomLogger(filePath string) (*log.Logger, error) {
	writer, err := createLoggerWriter(filePath)
	if err != nil {
		return nil, err
	}
	return log.New(writer, "", log.LstdFlags), nil
}

var auditLogger *log.Logger
var auditOnce sync.Once

// GetAuditLogger returns the singleton logger for the append-only audit file.
// Returns nil when the audit log file cannot be created; callers must check.
func GetAuditLogger() *log.Logger {
	auditOnce.Do(func() {
		path := config.Cfg.AuditLogFile
		if path == "" {
			path = "/var/log/masterdata/audit.log"
		}
		l, err := NewCustomLogger(path)
		if err != nil {
			log.Printf("[ERROR] Cannot init audit logger: %v", err)
		} else {
			auditLogger = l
		}
	})
	return auditLogger
}

// JSONResponse sends a JSON response with the given status code.
func JSONResponse(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// LoggerMiddleware logs every request with its latency and status code.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)
		status := c.Writer.Status()

		switch {
		case status >= 500:
			logger.Errorf("%s %s -> %d (%v)", c.Request.Method, c.Request.URL.Path, status, elapsed)
		case status >= 400:
			logger.Warnf("%s %s -> %d (%v)", c.Request.Method, c.Request.URL.Path, status, elapsed)
		default:
			logger.Infof("%s %s -> %d (%v)", c.Request.Method, c.Request.URL.Path, status, elapsed)
		}
	}
}
