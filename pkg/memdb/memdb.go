// Package memdb runs a temporary in-memory MySQL server whose tables are
// built from the master table whitelist. It backs the test suites with a real
// SQL store instead of mocks.
package memdb

import (
	"context"
	"fmt"
	"net"
	"time"

	sqle "github.com/dolthub/go-mysql-server"
	"github.com/dolthub/go-mysql-server/memory"
	"github.com/dolthub/go-mysql-server/server"
	"github.com/dolthub/go-mysql-server/sql"
	"github.com/dolthub/go-mysql-server/sql/types"

	"masterdataapi/schema"
)

// DatabaseName is the logical database served by the in-memory server.
const DatabaseName = "master_data"

// Server is a running in-memory MySQL server.
type Server struct {
	srv    *server.Server
	Port   int
	cancel context.CancelFunc
}

// Start launches an in-memory MySQL server containing one table per registry
// entry plus the audit table, and waits until it accepts connections.
func Start(ctx context.Context, registry *schema.Registry) (*Server, error) {
	port, err := getFreePort()
	if err != nil {
		return nil, fmt.Errorf("failed to get free port: %w", err)
	}

	db := memory.NewDatabase(DatabaseName)
	provider := memory.NewDBProvider(db)
	engine := sqle.NewDefault(provider)

	for _, name := range registry.Names() {
		desc, _ := registry.Describe(name)
		createMasterTable(db, desc)
	}
	createAuditTable(db)

	cfg := server.Config{
		Protocol: "tcp",
		Address:  fmt.Sprintf("localhost:%d", port),
	}
	s, err := server.NewServer(cfg, engine, sql.NewContext, memory.NewSessionBuilder(provider), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	serverCtx, cancel := context.WithCancel(ctx)
	go func() {
		_ = s.Start()
	}()
	go func() {
		<-serverCtx.Done()
		_ = s.Close()
	}()

	// Poll server readiness with timeout to prevent indefinite blocking
	readyCtx, readyCancel := context.WithTimeout(ctx, 5*time.Second)
	defer readyCancel()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-readyCtx.Done():
			cancel()
			return nil, fmt.Errorf("server failed to start within timeout: %w", readyCtx.Err())
		case <-ticker.C:
			conn, err := net.DialTimeout("tcp", fmt.Sprintf("localhost:%d", port), 100*time.Millisecond)
			if err == nil {
				conn.Close()
				return &Server{srv: s, Port: port, cancel: cancel}, nil
			}
		}
	}
}

// Close shuts down the server.
func (s *Server) Close() error {
	if s.cancel != nil {
		s.cancel()
	}
	return s.srv.Close()
}

// DSN returns a GORM-compatible connection string for the server.
func (s *Server) DSN() string {
	return fmt.Sprintf("root:@tcp(localhost:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		s.Port, DatabaseName)
}

func createMasterTable(db *memory.Database, desc *schema.TableDescriptor) {
	cols := sql.Schema{
		{Name: "id", Type: types.Int64, Source: desc.Name, Nullable: false, PrimaryKey: true, AutoIncrement: true},
	}
	for _, f := range desc.Fields {
		cols = append(cols, &sql.Column{
			Name:     f.Name,
			Type:     columnType(f.Kind),
			Source:   desc.Name,
			Nullable: true,
		})
	}
	table := memory.NewTable(db, desc.Name, sql.NewPrimaryKeySchema(cols), db.GetForeignKeyCollection())
	db.AddTable(desc.Name, table)
}

func createAuditTable(db *memory.Database) {
	const name = "tbl_audit_log"
	cols := sql.Schema{
		{Name: "id", Type: types.Int64, Source: name, Nullable: false, PrimaryKey: true, AutoIncrement: true},
		{Name: "operation", Type: types.Text, Source: name, Nullable: true},
		{Name: "target_table", Type: types.Text, Source: name, Nullable: true},
		{Name: "actor", Type: types.Text, Source: name, Nullable: true},
		{Name: "summary", Type: types.Text, Source: name, Nullable: true},
		{Name: "created_at", Type: types.Datetime, Source: name, Nullable: true},
	}
	table := memory.NewTable(db, name, sql.NewPrimaryKeySchema(cols), db.GetForeignKeyCollection())
	db.AddTable(name, table)
}

func columnType(kind schema.FieldKind) sql.Type {
	switch kind {
	case schema.KindInt:
		return types.Int64
	case schema.KindSmallInt:
		return types.Int16
	case schema.KindDecimal:
		return types.Float64
	default:
		// Text keeps string, date and reference columns flexible, matching the
		// loose column typing of the production schema.
		return types.Text
	}
}

func getFreePort() (int, error) {
	addr, err := net.ResolveTCPAddr("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return 0, err
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}
