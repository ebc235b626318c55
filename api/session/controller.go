// Package sessionapi handles board sessions: starting them, clicking cells
// and exporting the graph.
package sessionapi

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/beka-birhanu/gridpath/api/identity"
	"github.com/beka-birhanu/gridpath/game/session"
	"github.com/beka-birhanu/gridpath/grid"
	"github.com/beka-birhanu/gridpath/service"
	"github.com/beka-birhanu/gridpath/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestTimeout = 2 * time.Second

// SessionController manages session operations.
type SessionController struct {
	sessionManager i.SessionManager
}

// NewSessionController initializes a SessionController.
func NewSessionController(sm i.SessionManager) (*SessionController, error) {
	if sm == nil {
		return nil, errors.New("nil session manager")
	}
	return &SessionController{sessionManager: sm}, nil
}

// RegisterPublic registers public routes.
func (sc *SessionController) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/sessions", sc.start)
}

// RegisterProtected registers routes reserved to the session's token holder.
func (sc *SessionController) RegisterProtected(route *gin.RouterGroup) {
	sessions := route.Group("/sessions/:ID", identity.OwnsParam("ID", service.ClaimSessionID))
	{
		sessions.GET("", sc.state)
		sessions.DELETE("", sc.close)
		sessions.POST("/select", sc.selectCell)
		sessions.POST("/reset", sc.reset)
		sessions.GET("/graph.dot", sc.graphDOT)
		sessions.GET("/board.png", sc.boardPNG)
		sessions.GET("/graph.png", sc.graphPNG)
	}
}

// start opens a session and hands out its token.
func (sc *SessionController) start(ctx *gin.Context) {
	var request NewSessionRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	timeoutCtx, cancel := context.WithTimeout(ctx.Request.Context(), requestTimeout)
	defer cancel()
	sess, token, err := sc.sessionManager.NewSession(timeoutCtx, request.BoardID)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, &SessionResponse{
		ID:      sess.ID.String(),
		BoardID: sess.BoardID,
		Token:   token,
		State:   toStateResponse(sess.State),
	})
}

func (sc *SessionController) state(ctx *gin.Context) {
	ID, ok := sessionID(ctx)
	if !ok {
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx.Request.Context(), requestTimeout)
	defer cancel()
	state, err := sc.sessionManager.State(timeoutCtx, ID)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toStateResponse(state))
}

// selectCell applies a click. A rejected click still answers with the stored state.
func (sc *SessionController) selectCell(ctx *gin.Context) {
	ID, ok := sessionID(ctx)
	if !ok {
		return
	}

	var request SelectRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx.Request.Context(), requestTimeout)
	defer cancel()
	cell := grid.Cell{Row: *request.Row, Col: *request.Col}
	state, err := sc.sessionManager.Select(timeoutCtx, ID, cell)
	if err != nil {
		status := statusOf(err)
		if status == http.StatusNotFound || status == http.StatusInternalServerError {
			ctx.JSON(status, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(status, gin.H{"error": err.Error(), "state": toStateResponse(state)})
		return
	}

	ctx.JSON(http.StatusOK, toStateResponse(state))
}

func (sc *SessionController) reset(ctx *gin.Context) {
	ID, ok := sessionID(ctx)
	if !ok {
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx.Request.Context(), requestTimeout)
	defer cancel()
	state, err := sc.sessionManager.Reset(timeoutCtx, ID)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toStateResponse(state))
}

func (sc *SessionController) close(ctx *gin.Context) {
	ID, ok := sessionID(ctx)
	if !ok {
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx.Request.Context(), requestTimeout)
	defer cancel()
	if err := sc.sessionManager.Close(timeoutCtx, ID); err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (sc *SessionController) graphDOT(ctx *gin.Context) {
	ID, ok := sessionID(ctx)
	if !ok {
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx.Request.Context(), requestTimeout)
	defer cancel()
	b, err := sc.sessionManager.GraphDOT(timeoutCtx, ID)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.Data(http.StatusOK, "text/vnd.graphviz; charset=utf-8", b)
}

func (sc *SessionController) boardPNG(ctx *gin.Context) {
	sc.png(ctx, sc.sessionManager.RenderBoard)
}

func (sc *SessionController) graphPNG(ctx *gin.Context) {
	sc.png(ctx, sc.sessionManager.RenderGraph)
}

func (sc *SessionController) png(ctx *gin.Context, render func(context.Context, uuid.UUID, io.Writer) error) {
	ID, ok := sessionID(ctx)
	if !ok {
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx.Request.Context(), requestTimeout)
	defer cancel()
	var buf bytes.Buffer
	if err := render(timeoutCtx, ID, &buf); err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.Data(http.StatusOK, "image/png", buf.Bytes())
}

func sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	ID, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return uuid.Nil, false
	}
	return ID, true
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrBoardNotFound):
		return http.StatusNotFound
	case errors.Is(err, grid.ErrInvalidEndpoint), errors.Is(err, grid.ErrInvalidGrid):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrSessionResolved):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
