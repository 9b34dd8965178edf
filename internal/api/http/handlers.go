package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/InspectOS/internal/domain/discovery"
	"github.com/GriffinCanCode/InspectOS/internal/domain/journal"
	"github.com/GriffinCanCode/InspectOS/internal/domain/manifest"
	"github.com/GriffinCanCode/InspectOS/internal/domain/target"
	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/logging"
	"github.com/GriffinCanCode/InspectOS/internal/payload"
	"github.com/GriffinCanCode/InspectOS/internal/shared/id"
	"github.com/GriffinCanCode/InspectOS/internal/shared/types"
	"github.com/GriffinCanCode/InspectOS/internal/shared/utils"
)

// CopierSource mints payload delivery capabilities for launch registrations
type CopierSource interface {
	CopierFor(name, version string) payload.Copier
}

// Handlers contains HTTP request handlers
type Handlers struct {
	host       *discovery.Host
	targets    *target.Manager
	journal    *journal.Store
	copiers    CopierSource
	engine     *manifest.Engine
	attachWait time.Duration
	logger     *logging.Logger
}

// NewHandlers creates the handler set. Journal and engine are optional;
// their endpoints answer 503 when absent.
func NewHandlers(
	host *discovery.Host,
	targets *target.Manager,
	journalStore *journal.Store,
	copiers CopierSource,
	engine *manifest.Engine,
	attachWait time.Duration,
	logger *logging.Logger,
) *Handlers {
	if attachWait <= 0 {
		attachWait = 30 * time.Second
	}
	return &Handlers{
		host:       host,
		targets:    targets,
		journal:    journalStore,
		copiers:    copiers,
		engine:     engine,
		attachWait: attachWait,
		logger:     logger,
	}
}

// Root handles the root endpoint
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "inspectos-backend",
		"version": "1.0.0",
		"endpoints": gin.H{
			"health":    "/health",
			"streams":   "/streams",
			"processes": "/processes",
			"launches":  "/launches",
			"targets":   "/targets",
			"journal":   "/journal",
			"websocket": "/stream",
			"metrics":   "/metrics",
		},
	})
}

// Health returns component health
func (h *Handlers) Health(c *gin.Context) {
	components := gin.H{
		"discovery": h.host.Stats(),
		"targets":   h.targets.Stats(),
	}
	if h.journal != nil {
		components["journal"] = h.journal.Stats()
	}
	if h.engine != nil {
		components["manifests"] = h.engine.Stats()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"service":    "inspectos-backend",
		"components": components,
	})
}

// ListStreams returns connected device streams
func (h *Handlers) ListStreams(c *gin.Context) {
	streams := h.host.Streams()
	c.JSON(http.StatusOK, gin.H{
		"streams": streams,
		"count":   len(streams),
	})
}

// ListProcesses returns the inspectable set, with the full live set on
// ?all=true
func (h *Handlers) ListProcesses(c *gin.Context) {
	inspectable := h.host.Inspectable()
	resp := gin.H{
		"inspectable": inspectable,
		"count":       len(inspectable),
		"stats":       h.host.Stats(),
	}
	if c.Query("all") == "true" {
		resp["live"] = h.host.Processes()
	}
	c.JSON(http.StatusOK, resp)
}

// ListLaunches returns registered launch intents
func (h *Handlers) ListLaunches(c *gin.Context) {
	launches := h.host.Launches()
	c.JSON(http.StatusOK, gin.H{
		"launches": launches,
		"count":    len(launches),
	})
}

// CreateLaunch registers a launch intent
func (h *Handlers) CreateLaunch(c *gin.Context) {
	var req types.LaunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request: " + err.Error(),
		})
		return
	}
	if err := validateLaunchRequest(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	copier, err := h.copierFor(req.Payload)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	info := types.LaunchInfo{
		ID:           string(id.NewLaunchID()),
		Manufacturer: req.Manufacturer,
		Model:        req.Model,
		Process:      req.Process,
		Payload:      req.Payload,
		Source:       "api",
		RegisteredAt: time.Now(),
	}
	if err := h.host.AddLaunched(&discovery.LaunchedProcess{Info: info, Copier: copier}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"launch":  info,
	})
}

// DeleteLaunch withdraws a launch intent identified by its key triple
func (h *Handlers) DeleteLaunch(c *gin.Context) {
	key := types.LaunchKey{
		Manufacturer: c.Query("manufacturer"),
		Model:        c.Query("model"),
		Process:      c.Query("process"),
	}
	if key.Manufacturer == "" || key.Model == "" || key.Process == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "manufacturer, model, and process query parameters are required",
		})
		return
	}

	if !h.host.RemoveLaunched(key) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "no launch registered for " + key.String(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"key":     key,
	})
}

// AttachTarget starts or joins the attach flow for a process and waits for
// it. Joining an in-flight or completed flow returns the same target id.
func (h *Handlers) AttachTarget(c *gin.Context) {
	var req types.AttachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request: " + err.Error(),
		})
		return
	}

	desc, err := h.resolveDescriptor(req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.attachWait)
	defer cancel()

	info, err := h.host.Attach(ctx, desc)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"target":  info,
		})
	case errors.Is(err, discovery.ErrNotInspectable):
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error":   err.Error(),
		})
	case errors.Is(err, context.DeadlineExceeded):
		// The flow keeps running; the pending handle is retrievable
		c.JSON(http.StatusAccepted, gin.H{
			"success": false,
			"target":  info,
			"error":   "attach still in progress",
		})
	default:
		h.logger.Warn("attach failed",
			zap.String("descriptor", desc.String()),
			zap.Error(err),
		)
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"target":  info,
			"error":   err.Error(),
		})
	}
}

// ListTargets returns all attach session handles
func (h *Handlers) ListTargets(c *gin.Context) {
	targets := h.targets.Targets()
	c.JSON(http.StatusOK, gin.H{
		"targets": targets,
		"count":   len(targets),
		"stats":   h.targets.Stats(),
	})
}

// GetTarget returns one target by id
func (h *Handlers) GetTarget(c *gin.Context) {
	targetID := c.Param("id")
	info, ok := h.targets.Get(targetID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "target not found: " + targetID,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"target":  info,
	})
}

// DisposeTarget tears down a target by id. Disposing a failed entry clears
// it so the next attach runs fresh.
func (h *Handlers) DisposeTarget(c *gin.Context) {
	targetID := c.Param("id")
	if err := h.targets.Dispose(targetID); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, target.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      targetID,
	})
}

// GetJournal returns recent transitions, optionally filtered by process
func (h *Handlers) GetJournal(c *gin.Context) {
	if h.journal == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "journal is disabled",
		})
		return
	}

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "limit must be a positive integer",
			})
			return
		}
		limit = parsed
	}

	var (
		entries []types.JournalEntry
		err     error
	)
	if process := c.Query("process"); process != "" {
		entries, err = h.journal.ByProcess(process, limit)
	} else {
		entries, err = h.journal.Recent(limit)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"count":   len(entries),
	})
}

// copierFor builds the delivery capability for a payload reference. An
// empty reference means the agent is already on the device.
func (h *Handlers) copierFor(ref string) (payload.Copier, error) {
	if ref == "" {
		return payload.NopCopier(""), nil
	}
	if h.copiers == nil {
		return nil, errors.New("payload store is not configured")
	}
	name, version := payload.ParseKey(ref)
	return h.copiers.CopierFor(name, version), nil
}

// resolveDescriptor finds the inspectable descriptor for an attach request.
// A request without a pid must match exactly one inspectable process.
func (h *Handlers) resolveDescriptor(req types.AttachRequest) (types.ProcessDescriptor, error) {
	if req.PID != 0 && req.StreamID != 0 {
		return types.ProcessDescriptor{
			Manufacturer: req.Manufacturer,
			Model:        req.Model,
			Process:      req.Process,
			PID:          req.PID,
			StreamID:     req.StreamID,
		}, nil
	}

	var matches []types.ProcessDescriptor
	for _, desc := range h.host.Inspectable() {
		if desc.Manufacturer != req.Manufacturer || desc.Model != req.Model || desc.Process != req.Process {
			continue
		}
		if req.PID != 0 && desc.PID != req.PID {
			continue
		}
		if req.StreamID != 0 && desc.StreamID != req.StreamID {
			continue
		}
		matches = append(matches, desc)
	}

	switch len(matches) {
	case 0:
		return types.ProcessDescriptor{}, errors.New("no inspectable process matches the request")
	case 1:
		return matches[0], nil
	default:
		return types.ProcessDescriptor{}, errors.New("request is ambiguous, supply pid and stream_id")
	}
}

func validateLaunchRequest(req types.LaunchRequest) error {
	if err := utils.ValidateDeviceField(req.Manufacturer, "manufacturer", true); err != nil {
		return err
	}
	if err := utils.ValidateDeviceField(req.Model, "model", true); err != nil {
		return err
	}
	if err := utils.ValidateProcessName(req.Process, true); err != nil {
		return err
	}
	if req.Payload != "" {
		name, version := payload.ParseKey(req.Payload)
		if err := utils.ValidateBundleName(name, true); err != nil {
			return err
		}
		if version != "" {
			if err := utils.ValidateBundleName(version, true); err != nil {
				return err
			}
		}
	}
	return nil
}
