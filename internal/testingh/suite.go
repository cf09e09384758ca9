package testingh

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/zestagio/static-server/internal/fileserver"
)

const testTimeout = 10 * time.Second

type ContextSuite struct {
	suite.Suite

	Ctx       context.Context
	ctxCancel context.CancelFunc

	SuiteCtx       context.Context
	suiteCtxCancel context.CancelFunc
}

func (cs *ContextSuite) SetupSuite() {
	cs.SuiteCtx, cs.suiteCtxCancel = context.WithCancel(context.Background())
}

func (cs *ContextSuite) TearDownSuite() {
	cs.suiteCtxCancel()
}

func (cs *ContextSuite) SetupTest() {
	cs.Ctx, cs.ctxCancel = context.WithTimeout(cs.SuiteCtx, testTimeout)
}

func (cs *ContextSuite) TearDownTest() {
	cs.ctxCancel()
}

// RootSuite gives every test a fresh served directory Root inside Base.
// Files written to Base are outside the root and must never be served.
type RootSuite struct {
	ContextSuite

	Base string
	Root string
}

func (rs *RootSuite) SetupTest() {
	rs.ContextSuite.SetupTest()

	rs.Base = rs.T().TempDir()
	rs.Root = filepath.Join(rs.Base, "www")
	rs.Require().NoError(os.MkdirAll(rs.Root, 0o755))
}

// WriteFile creates a file relative to Root, with parents. Use "../name" to
// place a file outside of the root.
func (rs *RootSuite) WriteFile(rel, content string) string {
	p := filepath.Join(rs.Root, filepath.FromSlash(rel))
	rs.Require().NoError(os.MkdirAll(filepath.Dir(p), 0o755))
	rs.Require().NoError(os.WriteFile(p, []byte(content), 0o644))
	return p
}

func (rs *RootSuite) Resolver() *fileserver.Resolver {
	r, err := fileserver.NewResolver(rs.Root)
	rs.Require().NoError(err)
	return r
}
