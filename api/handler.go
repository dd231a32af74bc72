package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/metrics"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	Policies(ctx *fiber.Ctx) error
	Simulate(ctx *fiber.Ctx) error
	Compare(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// NewApp wires the /api/v1 routes onto a fresh fiber app.
func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/policies", handler.Policies)
		v1.Post("/simulate/:policy", handler.Simulate)
		v1.Post("/compare", handler.Compare)
		v1.Post("/all", handler.AllAlgorithms)
	}
	return app
}

func (s *SchedulerHandlerImpl) Policies(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"policies": schedulers.PolicyNames()})
}

func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	request, processes, err := parseRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	policy := ctx.Params("policy")
	result, err := schedulers.Simulate(policy, processes, request.ResolveOptions(s.config.Options))
	if err != nil {
		return writeError(ctx, err)
	}
	kpis := metrics.ComputeGeneralKpis(processes, result.Trace)
	return ctx.JSON(responses.NewScheduleResponse(policy, result, kpis))
}

func (s *SchedulerHandlerImpl) Compare(ctx *fiber.Ctx) error {
	request, processes, err := parseRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	policies, err := request.ResolvePolicies()
	if err != nil {
		return writeError(ctx, err)
	}
	return s.compare(ctx, request, processes, policies)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, processes, err := parseRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	return s.compare(ctx, request, processes, schedulers.PolicyNames())
}

func (s *SchedulerHandlerImpl) compare(ctx *fiber.Ctx, request *requests.ScheduleRequests, processes []core.Process, policies []string) error {
	runs, err := schedulers.Compare(ctx.UserContext(), processes, policies, request.ResolveOptions(s.config.Options))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(responses.NewComparisonResponse(schedulers.Rows(runs)))
}

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, []core.Process, error) {
	request := &requests.ScheduleRequests{}
	if err := ctx.BodyParser(request); err != nil {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "invalid request format")
	}
	processes, err := request.ToProcesses()
	if err != nil {
		return nil, nil, err
	}
	return request, processes, nil
}

func writeError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
	case errors.Is(err, core.ErrInvalidProcess),
		errors.Is(err, schedulers.ErrUnknownPolicy),
		errors.Is(err, schedulers.ErrInvalidQuantum):
		status = fiber.StatusBadRequest
	}
	if status >= fiber.StatusInternalServerError {
		logrus.Errorf("can not process request: %v", err)
	}
	return ctx.Status(status).JSON(responses.ErrorResponse{Error: err.Error()})
}
