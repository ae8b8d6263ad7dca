package request

import "turnera/internal/usecase/commands"

type BlockRequest struct {
	Weekday int    `json:"weekday" binding:"min=0,max=6"`
	Start   string `json:"start" binding:"required"`
	End     string `json:"end" binding:"required"`
}

type ReplaceWeekRequest struct {
	Blocks []BlockRequest `json:"blocks" binding:"required"`
}

func (r ReplaceWeekRequest) ToParams() []commands.BlockParams {
	params := make([]commands.BlockParams, len(r.Blocks))
	for i, b := range r.Blocks {
		params[i] = commands.BlockParams{
			Weekday: b.Weekday,
			Start:   b.Start,
			End:     b.End,
		}
	}
	return params
}
