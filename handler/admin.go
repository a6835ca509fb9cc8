package handler

import (
	stdctx "context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"Storefront/config"
	"Storefront/pkg/context"
	"Storefront/pkg/jwt"
	"Storefront/pkg/log"
	"Storefront/pkg/response"
	"Storefront/service"
)

const maxImportBytes = 32 << 20

type Admin struct {
	Config   *config.Config
	Transfer service.ITransferService
	Migrator *service.Migrator
	Mode     *service.PersistenceContext

	migration migrationState `wire:"-"`
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

// migrationState is the last progress seen from the background migration.
type migrationState struct {
	mu      sync.Mutex
	running bool
	percent float64
	message string
	err     string
}

func (s *migrationState) snapshot() gin.H {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gin.H{
		"running": s.running,
		"percent": s.percent,
		"message": s.message,
		"error":   s.err,
	}
}

func (s *migrationState) update(pct float64, msg string) {
	s.mu.Lock()
	s.percent, s.message = pct, msg
	s.mu.Unlock()
}

func (h *Admin) RegisterRouter(r gin.IRouter) {
	a := r.Group("/admin")
	a.POST("/login", context.Wrap(h.Login))

	a.Use(authorize(h.Config))
	a.GET("/persistence", context.Wrap(h.Persistence))
	a.GET("/migrate", context.Wrap(h.MigrationStatus))
	a.POST("/migrate", context.Wrap(h.Migrate))
	a.GET("/backup", context.Wrap(h.LastBackup))
	a.POST("/backup", context.Wrap(h.Backup))
	a.POST("/backup/async", context.Wrap(h.BackupAsync))
	a.POST("/restore", context.Wrap(h.Restore))
	a.GET("/export", context.Wrap(h.Export))
	a.POST("/import", context.Wrap(h.Import))
}

func (h *Admin) Login(c *gin.Context) error {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	hash := h.Config.Jwt.AdminPassword
	if hash == "" {
		return response.NewError(http.StatusForbidden, "admin login is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		log.L.Warn("admin login failed", zap.String("ip", c.ClientIP()))
		return response.NewError(http.StatusUnauthorized, "wrong password")
	}

	token, err := jwt.GenerateToken([]byte(h.Config.Jwt.Secret), jwt.SubjectAdmin, jwt.TypeAccess, h.Config.Jwt.Expire)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{
		"token":     token,
		"expiresIn": int64(h.Config.Jwt.Expire / time.Second),
	})
	return nil
}

func (h *Admin) Persistence(c *gin.Context) error {
	response.Success(c, gin.H{"mode": h.Mode.Mode()})
	return nil
}

// Migrate starts the local to remote migration in the background. Progress
// is read back through MigrationStatus.
func (h *Admin) Migrate(c *gin.Context) error {
	if h.Mode.ShouldUseRemote() {
		return fail(service.ErrAlreadyMigrated)
	}
	st := &h.migration
	st.mu.Lock()
	if st.running {
		st.mu.Unlock()
		return fail(service.ErrMigrationRunning)
	}
	st.running, st.percent, st.message, st.err = true, 0, "starting", ""
	st.mu.Unlock()

	ctx := stdctx.WithoutCancel(c.Request.Context())
	go func() {
		err := h.Migrator.MigrateLocalToRemote(ctx, st.update)
		st.mu.Lock()
		defer st.mu.Unlock()
		st.running = false
		if err != nil {
			st.err = err.Error()
			log.L.Error("migration failed", zap.Error(err))
		}
	}()

	c.JSON(http.StatusAccepted, response.Response{Code: 0, Msg: "migration started", Data: st.snapshot()})
	return nil
}

func (h *Admin) MigrationStatus(c *gin.Context) error {
	state := h.migration.snapshot()
	state["mode"] = h.Mode.Mode()
	response.Success(c, state)
	return nil
}

func (h *Admin) Backup(c *gin.Context) error {
	at, err := h.Transfer.BackupData(c.Request.Context())
	if err != nil {
		return fail(err)
	}
	response.Success(c, gin.H{"at": at})
	return nil
}

func (h *Admin) BackupAsync(c *gin.Context) error {
	h.Transfer.BackupAsync(c.Request.Context())
	c.JSON(http.StatusAccepted, response.Response{Code: 0, Msg: "backup started"})
	return nil
}

func (h *Admin) LastBackup(c *gin.Context) error {
	at, ok, err := h.Transfer.LastBackupAt(c.Request.Context())
	if err != nil {
		return fail(err)
	}
	if !ok {
		return fail(service.ErrNoBackup)
	}
	response.Success(c, gin.H{"at": at})
	return nil
}

func (h *Admin) Restore(c *gin.Context) error {
	collections, err := h.Transfer.RestoreFromBackup(c.Request.Context())
	if err != nil {
		return fail(err)
	}
	response.Success(c, gin.H{"collections": collections})
	return nil
}

// Export streams the export document as a download.
func (h *Admin) Export(c *gin.Context) error {
	payload, err := h.Transfer.ExportJSON(c.Request.Context())
	if err != nil {
		return fail(err)
	}
	name := fmt.Sprintf("storefront-%s.json", time.Now().UTC().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
	return nil
}

// Import takes an export document as the raw request body.
func (h *Admin) Import(c *gin.Context) error {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return response.NewError(http.StatusRequestEntityTooLarge, "payload too large")
		}
		return badRequest(err)
	}
	collections, err := h.Transfer.ImportData(c.Request.Context(), payload)
	if err != nil {
		return fail(err)
	}
	response.Success(c, gin.H{"collections": collections})
	return nil
}
