package api

import (
	"errors"
	"fmt"
	"os-cpu-scheduling/config"
	"os-cpu-scheduling/internal/core"
	"os-cpu-scheduling/internal/requests"
	"os-cpu-scheduling/internal/responses"
	"os-cpu-scheduling/internal/schedulers"
	"os-cpu-scheduling/internal/tracing"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	PriorityNonPreemptive(ctx *fiber.Ctx) error
	PriorityPreemptive(ctx *fiber.Ctx) error
	Schedule(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// Register mounts the handler routes on router.
func Register(router fiber.Router, handler SchedulerHandler) {
	router.Post("/fcfs", handler.FirstComeFirstServe)
	router.Post("/sjf", handler.ShortestJobFirst)
	router.Post("/srtf", handler.ShortestRemainingTimeFirst)
	router.Post("/rr", handler.RoundRobin)
	router.Post("/priority_np", handler.PriorityNonPreemptive)
	router.Post("/priority_p", handler.PriorityPreemptive)
	router.Post("/schedule", handler.Schedule)
	router.Post("/all", handler.AllAlgorithms)
	router.Get("/algorithms", handler.Algorithms)
}

var errTooManyProcesses = errors.New("too many processes")

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.ShortestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.RoundRobin)
}

func (s *SchedulerHandlerImpl) PriorityNonPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.PriorityNonPreemptive)
}

func (s *SchedulerHandlerImpl) PriorityPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.PriorityPreemptive)
}

// Schedule runs the algorithm named in the request body.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	return s.schedule(ctx, "")
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, quantum, err := s.parseRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	_, span := tracing.StartSpan(ctx.UserContext(), "schedule.all")
	span.WithInt("processes", len(request.Processes))
	results, err := schedulers.RunAll(request.Processes, quantum)
	tracing.EndSpan(span, err)
	if err != nil {
		return writeError(ctx, err)
	}

	response := responses.CompareResponse{Results: make([]responses.ScheduleResponse, 0, len(results))}
	for _, result := range results {
		response.Results = append(response.Results, schedulers.GenerateResponse(result))
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	algorithms := make([]responses.AlgorithmResponse, 0, len(core.Algorithms))
	for _, algorithm := range core.Algorithms {
		algorithms = append(algorithms, responses.AlgorithmResponse{
			Id:               algorithm,
			Label:            algorithm.Label(),
			RequiresPriority: algorithm.RequiresPriority(),
		})
	}
	return ctx.JSON(algorithms)
}

// schedule runs algorithm, or the one named in the body when algorithm is empty.
func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm core.Algorithm) error {
	request, quantum, err := s.parseRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	if algorithm == "" {
		if algorithm, err = core.ParseAlgorithm(request.Algorithm); err != nil {
			return writeError(ctx, err)
		}
	}

	_, span := tracing.StartSpan(ctx.UserContext(), "schedule."+string(algorithm))
	span.WithAttributes(map[string]string{"algorithm": string(algorithm)}).
		WithInt("processes", len(request.Processes)).
		WithInt("quantum", quantum)
	result, err := schedulers.Run(algorithm, request.Processes, quantum)
	tracing.EndSpan(span, err)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(schedulers.GenerateResponse(result))
}

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequest, int, error) {
	request := &requests.ScheduleRequest{}
	if err := ctx.BodyParser(request); err != nil {
		return nil, 0, &requestError{err: err}
	}
	if len(request.Processes) > s.config.MaxProcesses {
		return nil, 0, fmt.Errorf("%w: %d exceeds limit of %d", errTooManyProcesses, len(request.Processes), s.config.MaxProcesses)
	}
	quantum, err := request.TimeQuantum(s.config.RoundRobinTimeQuantum)
	if err != nil {
		return nil, 0, err
	}
	return request, quantum, nil
}

type requestError struct {
	err error
}

func (e *requestError) Error() string {
	return "invalid request format: " + e.err.Error()
}

var errorKinds = []struct {
	err  error
	kind string
}{
	{core.ErrEmptyInput, "empty_input"},
	{core.ErrMissingPriority, "missing_priority"},
	{core.ErrUnknownAlgorithm, "unknown_algorithm"},
	{core.ErrNonTerminatingInput, "non_terminating_input"},
	{core.ErrInvalidArrival, "invalid_arrival"},
	{core.ErrInvalidQuantum, "invalid_quantum"},
	{errTooManyProcesses, "too_many_processes"},
}

// errorKind maps an error onto the kind reported to API clients.
func errorKind(err error) string {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		return "invalid_request"
	}
	for _, candidate := range errorKinds {
		if errors.Is(err, candidate.err) {
			return candidate.kind
		}
	}
	return "internal"
}

func writeError(ctx *fiber.Ctx, err error) error {
	kind := errorKind(err)
	status := fiber.StatusBadRequest
	switch kind {
	case "internal":
		status = fiber.StatusInternalServerError
	case "too_many_processes":
		status = fiber.StatusRequestEntityTooLarge
	}
	ctx.Set("X-Error-Kind", kind)
	ctx.Status(status)
	return ctx.JSON(responses.ErrorResponse{Error: err.Error(), Kind: kind})
}

// ListenAddress formats the address the server binds to.
func ListenAddress(port int) string {
	return ":" + strconv.Itoa(port)
}
