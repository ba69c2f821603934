package response

import "prize-wheel/internal/usecase/commands"

type SpinResponse struct {
	Result  string         `json:"result"`
	Message string         `json:"message"`
	Prize   *PrizeResponse `json:"prize,omitempty"`
}

func FromSpinResult(result *commands.SpinResult) *SpinResponse {
	outcome := "LOSE"
	if result.Won {
		outcome = "WIN"
	}
	return &SpinResponse{
		Result:  outcome,
		Message: result.Message,
		Prize:   FromPrizeView(result.Prize),
	}
}
