// Package boardapi provides request and response shapes for board endpoints.
package boardapi

import "time"

// CreateBoardRequest carries a board layout, 0 for open cells and 1 for walls.
type CreateBoardRequest struct {
	Name  string  `json:"name"`
	Cells [][]int `json:"cells" binding:"required"`
}

// RandomBoardRequest asks for a generated maze of Rows x Cols rooms.
type RandomBoardRequest struct {
	Name string `json:"name"`
	Rows int    `json:"rows" binding:"required,min=1"`
	Cols int    `json:"cols" binding:"required,min=1"`
}

// BoardResponse represents a stored board.
type BoardResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Rows      int       `json:"rows"`
	Cols      int       `json:"cols"`
	Cells     [][]int   `json:"cells"`
	CreatedAt time.Time `json:"created_at"`
}
