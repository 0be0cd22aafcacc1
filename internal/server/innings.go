package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	inningsv1 "mlb-inning-times/gen/proto/innings/v1"
	"mlb-inning-times/gen/proto/innings/v1/inningsv1connect"
	"mlb-inning-times/internal/api"
	"mlb-inning-times/internal/constants"
	"mlb-inning-times/internal/domain"
	"mlb-inning-times/internal/export"
	"mlb-inning-times/internal/innings"
	"mlb-inning-times/internal/metrics"
	"mlb-inning-times/internal/service"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const ExportsPath = "/exports/"

var _ inningsv1connect.InningTimesHandler = (*InningsServer)(nil)

type InningsServer struct {
	inningSvc *service.InningService
	exports   *export.Store
	metrics   *metrics.Manager
	logger    zerolog.Logger
}

func NewInningsServer(inningSvc *service.InningService, exports *export.Store, m *metrics.Manager, logger zerolog.Logger) *InningsServer {
	return &InningsServer{inningSvc: inningSvc, exports: exports, metrics: m, logger: logger}
}

func (s *InningsServer) GetInnings(ctx context.Context, req *connect.Request[inningsv1.GetInningsRequest]) (*connect.Response[inningsv1.GetInningsResponse], error) {
	start := time.Now()
	defer func() {
		s.logger.Debug().Int64("duration_ms", time.Since(start).Milliseconds()).Msg("GetInnings finished")
	}()

	gamePks := innings.SplitIdentifiers(req.Msg.GetText(), req.Msg.GetFile())
	if len(gamePks) == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, innings.ErrNoIdentifiers)
	}

	ctx, cancel := context.WithTimeout(ctx, constants.BatchRequestTimeout)
	defer cancel()

	batch, err := s.inningSvc.RunBatch(ctx, gamePks, req.Msg.GetRefresh())
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	resp := &inningsv1.GetInningsResponse{
		Games:     make([]*inningsv1.Game, 0, len(batch.Results)),
		Empty:     batch.Empty,
		Requested: int32(batch.Requested),
	}
	for _, r := range batch.Results {
		resp.Games = append(resp.Games, toGame(r))
	}
	for _, f := range batch.Failures {
		resp.Failures = append(resp.Failures, toFailure(f))
	}

	if !batch.HasData() {
		resp.Message = constants.NoDataMessage
		return connect.NewResponse(resp), nil
	}

	link, err := s.storeExport(batch.Results)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	resp.Export = link

	return connect.NewResponse(resp), nil
}

func (s *InningsServer) GetGame(ctx context.Context, req *connect.Request[inningsv1.GetGameRequest]) (*connect.Response[inningsv1.GetGameResponse], error) {
	gamePk := strings.TrimSpace(req.Msg.GetGamePk())
	if gamePk == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, innings.ErrNoIdentifiers)
	}

	ctx, cancel := context.WithTimeout(ctx, constants.GameRequestTimeout)
	defer cancel()

	result, err := s.inningSvc.GetGame(ctx, gamePk, req.Msg.GetRefresh())
	if err != nil {
		return nil, connect.NewError(fetchErrorCode(err), err)
	}
	if result.Empty() {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("no data found for game %s", gamePk))
	}

	return connect.NewResponse(&inningsv1.GetGameResponse{Game: toGame(*result)}), nil
}

func (s *InningsServer) ClearCache(ctx context.Context, req *connect.Request[inningsv1.ClearCacheRequest]) (*connect.Response[inningsv1.ClearCacheResponse], error) {
	return connect.NewResponse(&inningsv1.ClearCacheResponse{Evicted: int32(s.inningSvc.ClearCache())}), nil
}

func (s *InningsServer) storeExport(results []domain.GameResult) (*inningsv1.ExportLink, error) {
	artifact, err := export.Build(results)
	if err != nil {
		return nil, fmt.Errorf("failed to build export: %w", err)
	}
	token, err := s.exports.Put(artifact)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordExport(string(artifact.Format))

	return &inningsv1.ExportLink{
		Token:    token,
		Format:   string(artifact.Format),
		Filename: artifact.Filename,
		Url:      ExportsPath + token,
	}, nil
}

// ServeExport streams a stored artifact. It expects to be mounted on a
// pattern carrying a {token} wildcard.
func (s *InningsServer) ServeExport(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	artifact, ok := s.exports.Get(token)
	if !ok {
		http.Error(w, "export not found or expired", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.Header().Set("Content-Length", fmt.Sprint(len(artifact.Data)))
	if _, err := w.Write(artifact.Data); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Str("token", token).Msg("failed to write export")
	}
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func fetchErrorCode(err error) connect.Code {
	var statusErr *api.StatusError
	switch {
	case errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound:
		return connect.CodeNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return connect.CodeDeadlineExceeded
	case errors.Is(err, context.Canceled):
		return connect.CodeCanceled
	default:
		return connect.CodeUnavailable
	}
}

func toGame(r domain.GameResult) *inningsv1.Game {
	g := &inningsv1.Game{GamePk: r.GamePk, Innings: make([]*inningsv1.InningRow, 0, len(r.Innings))}
	if !r.FetchedAt.IsZero() {
		g.FetchedAt = timestamppb.New(r.FetchedAt)
	}
	for _, w := range r.Innings {
		g.Innings = append(g.Innings, &inningsv1.InningRow{
			InningHalf: w.Label(),
			Inning:     int32(w.Inning),
			HalfInning: w.HalfInning,
			StartTime:  w.Start,
			EndTime:    w.End,
		})
	}
	return g
}

func toFailure(f domain.FetchFailure) *inningsv1.Failure {
	out := &inningsv1.Failure{GamePk: f.GamePk, Error: f.Error()}
	var statusErr *api.StatusError
	if errors.As(f.Err, &statusErr) {
		out.StatusCode = int32(statusErr.StatusCode)
	}
	return out
}
