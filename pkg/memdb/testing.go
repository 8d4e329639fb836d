package memdb

import (
	"context"
	"testing"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"masterdataapi/schema"
)

// OpenTest starts an in-memory MySQL server for the registry and returns a
// GORM handle connected to it. Server shutdown is registered as test cleanup.
func OpenTest(t *testing.T, registry *schema.Registry) *gorm.DB {
	t.Helper()

	srv, err := Start(context.Background(), registry)
	if err != nil {
		t.Fatalf("failed to start in-memory MySQL server: %v", err)
	}
	t.Cleanup(func() { _ = srv.Close() })

	db, err := gorm.Open(mysql.Open(srv.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect GORM to in-memory server: %v", err)
	}
	return db
}
