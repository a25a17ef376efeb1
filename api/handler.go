package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mahmoudKheyrati/cpu-scheduler/config"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/generator"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/logging"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/requests"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/responses"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/schedulers"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/sharing"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	EncodeShare(ctx *fiber.Ctx) error
	DecodeShare(ctx *fiber.Ctx) error
	Random(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config    *config.SchedulerConfig
	simulator *schedulers.Simulator
	log       *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, log *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config:    config,
		simulator: schedulers.NewSimulator(log),
		log:       log,
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTimeFirst)
}

// AllAlgorithms runs every policy on the same workload. Policies that reject the
// input (priority without priorities, for instance) are reported under errors.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, ok, err := s.parseRequest(ctx)
	if !ok {
		return err
	}

	compare := s.simulator.Compare(uuid.NewString(), request.CoreProcesses(), s.params(request))
	return ctx.JSON(compare)
}

func (s *SchedulerHandlerImpl) EncodeShare(ctx *fiber.Ctx) error {
	request, ok, err := s.parseRequest(ctx)
	if !ok {
		return err
	}
	query, err := sharing.Encode(request)
	if err != nil {
		return s.fail(ctx, fiber.StatusInternalServerError, err)
	}
	return ctx.JSON(responses.ShareResponse{Query: query})
}

func (s *SchedulerHandlerImpl) DecodeShare(ctx *fiber.Ctx) error {
	request, err := sharing.Decode(string(ctx.Request().URI().QueryString()))
	if err != nil {
		return s.fail(ctx, fiber.StatusBadRequest, err)
	}
	return ctx.JSON(request)
}

func (s *SchedulerHandlerImpl) Random(ctx *fiber.Ctx) error {
	opts := generator.DefaultOptions()
	if count := ctx.QueryInt("count", 0); count > 0 {
		if s.config.MaxProcesses > 0 && count > s.config.MaxProcesses {
			count = s.config.MaxProcesses
		}
		opts.MinProcesses, opts.MaxProcesses = count, count
	}
	opts.WithPriority = ctx.QueryBool("priority", false)
	seed := int64(ctx.QueryInt("seed", 0))
	return ctx.JSON(requests.ScheduleRequest{Processes: generator.Generate(seed, opts)})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, ok, err := s.parseRequest(ctx)
	if !ok {
		return err
	}

	params := s.params(request)
	result, err := s.simulator.Simulate(algorithm, request.CoreProcesses(), params)
	if err != nil {
		if errors.Is(err, schedulers.ErrInvalidArgument) {
			return s.fail(ctx, fiber.StatusBadRequest, err)
		}
		return s.fail(ctx, fiber.StatusInternalServerError, err)
	}

	return ctx.JSON(schedulers.GenerateResponse(uuid.NewString(), algorithm, params, result))
}

// parseRequest decodes and bounds the body. When ok is false the error response has
// already been written and err is what the handler should return.
func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (requests.ScheduleRequest, bool, error) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		s.log.Debug("invalid request body", logging.ErrAttr(err))
		return request, false, ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: "invalid request format"})
	}
	limits := requests.Limits{MaxProcesses: s.config.MaxProcesses, MaxTotalBurst: s.config.MaxTotalBurst}
	if err := request.CheckLimits(limits); err != nil {
		return request, false, s.fail(ctx, fiber.StatusBadRequest, err)
	}
	return request, true, nil
}

func (s *SchedulerHandlerImpl) params(request requests.ScheduleRequest) schedulers.Params {
	if request.Quantum != nil {
		return schedulers.Params{Quantum: *request.Quantum}
	}
	return schedulers.Params{Quantum: s.config.RoundRobinTimeQuantum}
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, status int, err error) error {
	s.log.Info("request failed", slog.Int("status", status), logging.ErrAttr(err))
	return ctx.Status(status).JSON(responses.ErrorResponse{Error: err.Error()})
}
