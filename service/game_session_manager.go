package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/gridpath/domain"
	"github.com/beka-birhanu/gridpath/game/maze"
	"github.com/beka-birhanu/gridpath/game/session"
	"github.com/beka-birhanu/gridpath/grid"
	"github.com/beka-birhanu/gridpath/service/i"
	"github.com/google/uuid"
)

const (
	defaultTokenTTL = 24 * time.Hour

	// ClaimSessionID is the token claim naming the session a bearer owns.
	ClaimSessionID = "sessionID"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrBoardNotFound   = errors.New("board not found")
)

var _ i.SessionManager = &GameSessionManager{}

// GameSessionManager owns board sessions. Each session keeps the graph built
// from its board in memory; selection states go through the StateStore.
type GameSessionManager struct {
	sessions   map[uuid.UUID]*gameSession
	boards     i.BoardRepo
	states     i.StateStore
	tokenizer  i.Tokenizer
	renderer   i.Renderer
	logger     i.Logger
	tokenTTL   time.Duration
	randSource func() *rand.Rand
	sync.RWMutex
}

type gameSession struct {
	boardID string
	graph   *grid.Graph
}

// Config holds the collaborators of a GameSessionManager.
type Config struct {
	Boards    i.BoardRepo
	States    i.StateStore
	Tokenizer i.Tokenizer
	Renderer  i.Renderer
	Logger    i.Logger
	TokenTTL  time.Duration
	// RandSource seeds board generation; nil uses the time.
	RandSource func() *rand.Rand
}

func NewGameSessionManager(c *Config) (*GameSessionManager, error) {
	if c.Boards == nil || c.States == nil || c.Tokenizer == nil || c.Renderer == nil || c.Logger == nil {
		return nil, errors.New("incomplete session manager config")
	}

	gsm := &GameSessionManager{
		sessions:   make(map[uuid.UUID]*gameSession),
		boards:     c.Boards,
		states:     c.States,
		tokenizer:  c.Tokenizer,
		renderer:   c.Renderer,
		logger:     c.Logger,
		tokenTTL:   c.TokenTTL,
		randSource: c.RandSource,
	}
	if gsm.tokenTTL <= 0 {
		gsm.tokenTTL = defaultTokenTTL
	}
	if gsm.randSource == nil {
		gsm.randSource = func() *rand.Rand { return rand.New(rand.NewSource(time.Now().UnixNano())) }
	}
	return gsm, nil
}

// CreateBoard validates and stores a board layout.
func (g *GameSessionManager) CreateBoard(ctx context.Context, name string, cells [][]int) (*dmn.Board, error) {
	board, err := dmn.NewBoard(dmn.BoardConfig{Name: name, Cells: cells})
	if err != nil {
		return nil, err
	}
	if err := g.boards.Save(ctx, board); err != nil {
		g.logger.Error(fmt.Sprintf("saving board %s: %s", board.ID, err))
		return nil, err
	}

	g.logger.Info(fmt.Sprintf("stored board %s (%dx%d)", board.ID, len(cells), len(cells[0])))
	return board, nil
}

// GenerateBoard carves a random maze of rows x cols rooms and stores it.
func (g *GameSessionManager) GenerateBoard(ctx context.Context, name string, rows, cols int) (*dmn.Board, error) {
	gr, err := maze.Generate(rows, cols, g.randSource())
	if err != nil {
		return nil, err
	}
	return g.CreateBoard(ctx, name, gr.Cells())
}

// Board returns a stored board, or the reference board for its ID.
func (g *GameSessionManager) Board(ctx context.Context, id string) (*dmn.Board, error) {
	if id == "" || id == dmn.ReferenceBoardID {
		return dmn.ReferenceBoard(), nil
	}

	board, err := g.boards.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, i.ErrBoardNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrBoardNotFound, id)
		}
		g.logger.Error(fmt.Sprintf("loading board %s: %s", id, err))
		return nil, err
	}
	return board, nil
}

// NewSession builds the graph of a board once and starts an idle session on it.
func (g *GameSessionManager) NewSession(ctx context.Context, boardID string) (*dmn.Session, string, error) {
	board, err := g.Board(ctx, boardID)
	if err != nil {
		return nil, "", err
	}

	gr, err := board.Grid()
	if err != nil {
		return nil, "", err
	}
	gs := &gameSession{boardID: board.ID, graph: grid.Build(gr)}

	sessionID := g.saveSession(gs)
	if err := g.states.Save(ctx, sessionID, session.State{}); err != nil {
		g.clean(sessionID)
		g.logger.Error(fmt.Sprintf("saving state of session %s: %s", sessionID, err))
		return nil, "", err
	}

	token, err := g.tokenizer.Generate(map[string]interface{}{ClaimSessionID: sessionID.String()}, g.tokenTTL)
	if err != nil {
		g.clean(sessionID)
		_ = g.states.Delete(ctx, sessionID)
		g.logger.Error(fmt.Sprintf("generating token for session %s: %s", sessionID, err))
		return nil, "", err
	}

	g.logger.Info(fmt.Sprintf("started session %s on board %s (%d nodes, %d edges)", sessionID, board.ID, gs.graph.Len(), gs.graph.EdgeCount()))
	return &dmn.Session{ID: sessionID, BoardID: board.ID}, token, nil
}

// State returns the current state of a session.
func (g *GameSessionManager) State(ctx context.Context, id uuid.UUID) (session.State, error) {
	if _, err := g.session(id); err != nil {
		return session.State{}, err
	}
	return g.load(ctx, id)
}

// Select applies a cell selection. The returned state is the one stored,
// including when the selection is rejected.
func (g *GameSessionManager) Select(ctx context.Context, id uuid.UUID, cell grid.Cell) (session.State, error) {
	gs, err := g.session(id)
	if err != nil {
		return session.State{}, err
	}

	return g.update(ctx, id, func(s session.State) (session.State, error) {
		next, err := session.Select(s, gs.graph, cell)
		switch {
		case err != nil:
			g.logger.Warning(fmt.Sprintf("session %s rejected selection %s: %s", id, cell, err))
		case next.Phase == session.Resolved && next.Path == nil:
			g.logger.Info(fmt.Sprintf("session %s: no path from %s to %s", id, *next.Start, *next.End))
		case next.Phase == session.Resolved:
			g.logger.Info(fmt.Sprintf("session %s: path from %s to %s in %d steps", id, *next.Start, *next.End, len(next.Path)-1))
		}
		return next, err
	})
}

// Reset returns a session to the idle state.
func (g *GameSessionManager) Reset(ctx context.Context, id uuid.UUID) (session.State, error) {
	if _, err := g.session(id); err != nil {
		return session.State{}, err
	}

	return g.update(ctx, id, func(s session.State) (session.State, error) {
		return session.Reset(s), nil
	})
}

// Close forgets a session and its state.
func (g *GameSessionManager) Close(ctx context.Context, id uuid.UUID) error {
	if _, err := g.session(id); err != nil {
		return err
	}
	g.clean(id)
	g.logger.Info(fmt.Sprintf("closed session %s", id))
	return g.states.Delete(ctx, id)
}

// GraphDOT exports the session graph in Graphviz format.
func (g *GameSessionManager) GraphDOT(_ context.Context, id uuid.UUID) ([]byte, error) {
	gs, err := g.session(id)
	if err != nil {
		return nil, err
	}
	return gs.graph.DOT()
}

// RenderBoard writes a PNG of the board and the current selection.
func (g *GameSessionManager) RenderBoard(ctx context.Context, id uuid.UUID, w io.Writer) error {
	gs, err := g.session(id)
	if err != nil {
		return err
	}
	state, err := g.load(ctx, id)
	if err != nil {
		return err
	}
	return g.renderer.Board(w, gs.graph.Grid(), state)
}

// RenderGraph writes a PNG plot of the session graph and the current path.
func (g *GameSessionManager) RenderGraph(ctx context.Context, id uuid.UUID, w io.Writer) error {
	gs, err := g.session(id)
	if err != nil {
		return err
	}
	state, err := g.load(ctx, id)
	if err != nil {
		return err
	}
	return g.renderer.Graph(w, gs.graph, state)
}

// update runs f on the stored state under the session lock and stores the result.
func (g *GameSessionManager) update(ctx context.Context, id uuid.UUID, f func(session.State) (session.State, error)) (session.State, error) {
	unlock, err := g.states.Lock(ctx, id)
	if err != nil {
		g.logger.Error(fmt.Sprintf("locking session %s: %s", id, err))
		return session.State{}, err
	}
	defer unlock()

	state, err := g.load(ctx, id)
	if err != nil {
		return session.State{}, err
	}

	next, opErr := f(state)
	if err := g.states.Save(ctx, id, next); err != nil {
		g.logger.Error(fmt.Sprintf("saving state of session %s: %s", id, err))
		return state, err
	}
	return next, opErr
}

// load reads the stored state. A session whose state is gone, expired in
// the store for instance, is forgotten.
func (g *GameSessionManager) load(ctx context.Context, id uuid.UUID) (session.State, error) {
	state, err := g.states.Load(ctx, id)
	if errors.Is(err, i.ErrStateNotFound) {
		g.clean(id)
		g.logger.Warning(fmt.Sprintf("session %s has no stored state, dropping it", id))
		return session.State{}, ErrSessionNotFound
	}
	return state, err
}

func (g *GameSessionManager) session(id uuid.UUID) (*gameSession, error) {
	g.RLock()
	defer g.RUnlock()
	gs, ok := g.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return gs, nil
}

func (g *GameSessionManager) saveSession(gs *gameSession) uuid.UUID {
	g.Lock()
	defer g.Unlock()

	sessionID := uuid.New()
	for {
		if _, ok := g.sessions[sessionID]; !ok {
			break
		}
		sessionID = uuid.New()
	}
	g.sessions[sessionID] = gs
	return sessionID
}

func (g *GameSessionManager) clean(id uuid.UUID) {
	g.Lock()
	defer g.Unlock()
	delete(g.sessions, id)
}
