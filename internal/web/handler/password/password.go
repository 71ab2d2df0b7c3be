// Package password provides the JSON API handler for password generation.
package password

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/joengan/passforge/internal/charset"
	"github.com/joengan/passforge/internal/config"
	"github.com/joengan/passforge/internal/generator"
	"github.com/joengan/passforge/internal/web/handler"
)

const (
	// Path is the route of the password generation endpoint.
	Path = handler.APIBasePath + "/password"
)

// Service is the password generation handler service.
type Service struct {
	cfg       *config.Config
	validator *validator.Validate
}

// Handler is the password generation handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init initializes the password generation handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config) error {
	if app == nil || cfg == nil {
		return errors.New(handler.ErrNilACFatalLogMsg)
	}

	s.cfg = cfg
	s.validator = validator.New()

	app.Post(Path, s.Post)

	return nil
}

// Post handles a generation request: it merges the request body over the
// configured defaults, runs the engine once per requested count and
// returns the password, entropy bits and sampling method of each result.
// Configuration errors come back as 422 with a structured error body.
func (s *Service) Post(c *fiber.Ctx) error {
	req := GenerateRequest{Count: 1}

	if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		log.Debug().Err(err).Msg("failed to parse generation request")

		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "malformed request body"})
	}

	if req.Count == 0 {
		req.Count = 1
	}

	if err := s.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	opts := req.options(s.cfg.Defaults.Options())

	results := make([]generator.Result, 0, req.Count)

	for n := 0; n < req.Count; n++ {
		res, err := generator.Generate(opts)
		if err != nil {
			return s.errorResponse(c, err)
		}

		results = append(results, res)
	}

	return c.JSON(GenerateResponse{Results: results})
}

// errorResponse maps engine errors onto HTTP statuses: recoverable
// configuration errors are 422, everything else is an internal failure.
func (s *Service) errorResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, charset.ErrNoClassSelected) || errors.Is(err, charset.ErrLengthBelowMin) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{Error: err.Error()})
	}

	log.Error().Err(err).Msg("password generation failed")

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "internal error"})
}
