package login

import (
	"github.com/dmitrymomot/loginkit/handler"
	"github.com/dmitrymomot/loginkit/pkg/validator"
)

type apiValidateRequest struct {
	Value   any    `json:"value"`
	Rules   string `json:"rules"`
	Touched bool   `json:"touched"`
	Gated   bool   `json:"gated"`
}

type apiValidateResponse struct {
	Valid   bool                  `json:"valid"`
	Display bool                  `json:"display"`
	Message string                `json:"message,omitempty"`
	Errors  []validator.Violation `json:"errors"`
}

// apiValidate evaluates one field state against a rule list.
func (s *Service) apiValidate(_ handler.Context, req apiValidateRequest) handler.Response {
	state := validator.FieldState{Value: req.Value, Touched: req.Touched, Gated: req.Gated}
	res := s.engine.Evaluate(state, validator.ParseRules(req.Rules))

	out := apiValidateResponse{
		Valid:   res.Empty(),
		Display: validator.ShouldDisplay(state, res),
		Errors:  res.Violations(),
	}
	if first, ok := res.First(); ok {
		out.Message = first.Message
	}
	return handler.JSON(out)
}
