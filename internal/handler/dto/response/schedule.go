package response

import "turnera/internal/usecase/queries"

type BlockResponse struct {
	Weekday int    `json:"weekday"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

type WeekResponse struct {
	Blocks []BlockResponse `json:"blocks"`
}

func FromBlockViews(rms []*queries.BlockView) *WeekResponse {
	blocks := make([]BlockResponse, len(rms))
	for i, rm := range rms {
		blocks[i] = BlockResponse{
			Weekday: rm.Weekday,
			Start:   rm.Start,
			End:     rm.End,
		}
	}
	return &WeekResponse{Blocks: blocks}
}
