// Package boardapi handles creation and lookup of board layouts.
package boardapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	dmn "github.com/beka-birhanu/gridpath/domain"
	"github.com/beka-birhanu/gridpath/game/maze"
	"github.com/beka-birhanu/gridpath/grid"
	"github.com/beka-birhanu/gridpath/service"
	"github.com/beka-birhanu/gridpath/service/i"
	"github.com/gin-gonic/gin"
)

const requestTimeout = 2 * time.Second

// BoardController serves board layouts.
type BoardController struct {
	sessionManager i.SessionManager
}

// NewBoardController initializes a BoardController.
func NewBoardController(sm i.SessionManager) (*BoardController, error) {
	if sm == nil {
		return nil, errors.New("nil session manager")
	}
	return &BoardController{sessionManager: sm}, nil
}

// RegisterPublic registers public routes.
func (bc *BoardController) RegisterPublic(route *gin.RouterGroup) {
	boards := route.Group("/boards")
	{
		boards.POST("", bc.create)
		boards.POST("/random", bc.random)
		boards.GET("/:ID", bc.board)
	}
}

// RegisterProtected registers protected routes.
func (bc *BoardController) RegisterProtected(route *gin.RouterGroup) {}

// create stores a user supplied layout.
func (bc *BoardController) create(ctx *gin.Context) {
	var request CreateBoardRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx.Request.Context(), requestTimeout)
	defer cancel()
	board, err := bc.sessionManager.CreateBoard(timeoutCtx, request.Name, request.Cells)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, toResponse(board))
}

// random generates and stores a maze layout.
func (bc *BoardController) random(ctx *gin.Context) {
	var request RandomBoardRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx.Request.Context(), requestTimeout)
	defer cancel()
	board, err := bc.sessionManager.GenerateBoard(timeoutCtx, request.Name, request.Rows, request.Cols)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, toResponse(board))
}

// board fetches a stored board, or the reference board.
func (bc *BoardController) board(ctx *gin.Context) {
	timeoutCtx, cancel := context.WithTimeout(ctx.Request.Context(), requestTimeout)
	defer cancel()
	board, err := bc.sessionManager.Board(timeoutCtx, ctx.Param("ID"))
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toResponse(board))
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrBoardNotFound):
		return http.StatusNotFound
	case errors.Is(err, grid.ErrInvalidGrid),
		errors.Is(err, maze.ErrInvalidDimension),
		errors.Is(err, dmn.ErrInvalidBoardName),
		errors.Is(err, dmn.ErrBoardNameTooLong):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func toResponse(b *dmn.Board) *BoardResponse {
	res := &BoardResponse{
		ID:        b.ID,
		Name:      b.Name,
		Rows:      len(b.Cells),
		Cells:     b.Cells,
		CreatedAt: b.CreatedAt,
	}
	if len(b.Cells) > 0 {
		res.Cols = len(b.Cells[0])
	}
	return res
}
