package rpc

import (
	"context"
	"errors"
	"fmt"
	"math"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/xtding233/curvekit/internal/curve"
	"github.com/xtding233/curvekit/internal/library"
	"github.com/xtding233/curvekit/internal/sampler"
	"github.com/xtding233/curvekit/internal/scan"
	"github.com/xtding233/curvekit/internal/verify"
)

const (
	ServiceName = "curves.v1.CurveService"

	methodListCurves = "/" + ServiceName + "/ListCurves"
	methodScan       = "/" + ServiceName + "/Scan"
	methodSample     = "/" + ServiceName + "/Sample"

	// MaxSamples caps one Sample request.
	MaxSamples = 1_000_000
)

// CurveServer is the server API of curves.v1.CurveService.
//
//	ListCurves {} -> {curves: [{name, description, from, to, step}]}
//	Scan {curve, from?, to?, step?} -> {curve, xs: [], ys: []}
//	Sample {mean, std_dev, n, hist_min?, hist_max?} ->
//	    {count, mean, std_dev, fraction_within_one_std_dev,
//	     expected_fraction, p50, p90, p99, bins?, counts?, outside?}
type CurveServer interface {
	ListCurves(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Scan(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Sample(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// Service implements CurveServer on top of a library holder.
type Service struct {
	curves *library.Holder
	// newRNG returns a fresh source per request; seeded sources are not
	// safe to share between concurrent requests
	newRNG func() sampler.RandomSource
}

// NewService creates the service. A nil newRNG uses the crypto source.
func NewService(curves *library.Holder, newRNG func() sampler.RandomSource) *Service {
	if newRNG == nil {
		newRNG = sampler.DefaultRNG
	}
	return &Service{curves: curves, newRNG: newRNG}
}

func (s *Service) ListCurves(_ context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	lib := s.curves.Load()
	list := make([]any, 0, len(lib.Names()))
	for _, name := range lib.Names() {
		c, _ := lib.Get(name)
		list = append(list, map[string]any{
			"name":        c.Name,
			"description": c.Description,
			"from":        c.Range.From,
			"to":          c.Range.To,
			"step":        c.Range.Step,
		})
	}
	return newStruct(map[string]any{"curves": list})
}

func (s *Service) Scan(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	f := in.GetFields()
	name := f["curve"].GetStringValue()
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "curve is required")
	}
	c, ok := s.curves.Load().Get(name)
	if !ok {
		return nil, status.Errorf(codes.NotFound, "unknown curve %q", name)
	}
	from := number(f, "from", c.Range.From)
	to := number(f, "to", c.Range.To)
	step := number(f, "step", c.Range.Step)

	pts, err := scan.CurveRange(ctx, c, from, to, step)
	if err != nil {
		return nil, toStatus(err)
	}
	xs := make([]any, len(pts))
	ys := make([]any, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	return newStruct(map[string]any{"curve": name, "xs": xs, "ys": ys})
}

func (s *Service) Sample(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	f := in.GetFields()
	mean := number(f, "mean", 0)
	std := number(f, "std_dev", 1)
	nf := number(f, "n", 0)
	if !(nf >= 1 && nf <= MaxSamples) || nf != math.Trunc(nf) {
		return nil, status.Errorf(codes.InvalidArgument, "n must be an integer in [1,%d], got %g", MaxSamples, nf)
	}
	n := int(nf)

	var histMin, histMax int
	_, hasHist := f["hist_min"]
	if hasHist {
		var err error
		if histMin, err = integer(f, "hist_min"); err != nil {
			return nil, err
		}
		if histMax, err = integer(f, "hist_max"); err != nil {
			return nil, err
		}
	}

	set, err := sampler.Generate(ctx, n, mean, std, s.newRNG())
	if err != nil {
		return nil, toStatus(err)
	}
	sum := verify.Summarize(set, mean, std)
	out := map[string]any{
		"count":                       float64(sum.Count),
		"mean":                        sum.Mean,
		"std_dev":                     sum.StdDev,
		"fraction_within_one_std_dev": sum.FractionWithinOneStdDev,
		"expected_fraction":           sum.ExpectedFraction,
		"p50":                         sum.P50,
		"p90":                         sum.P90,
		"p99":                         sum.P99,
	}
	if hasHist {
		h, err := verify.Bucket(set, histMin, histMax)
		if err != nil {
			return nil, toStatus(err)
		}
		bins := make([]any, len(h.Bins))
		counts := make([]any, len(h.Counts))
		for i := range h.Bins {
			bins[i], counts[i] = h.Bins[i], h.Counts[i]
		}
		out["bins"], out["counts"], out["outside"] = bins, counts, float64(h.Outside)
	}
	return newStruct(out)
}

func number(f map[string]*structpb.Value, key string, def float64) float64 {
	v, ok := f[key]
	if !ok {
		return def
	}
	if _, isNum := v.GetKind().(*structpb.Value_NumberValue); !isNum {
		return def
	}
	return v.GetNumberValue()
}

// maxExactInt is the largest magnitude float64 holds every integer up to.
const maxExactInt = 1 << 53

// integer reads a required whole-number field.
func integer(f map[string]*structpb.Value, key string) (int, error) {
	v := number(f, key, math.NaN())
	if math.IsNaN(v) || math.Abs(v) > maxExactInt || v != math.Trunc(v) {
		return 0, status.Errorf(codes.InvalidArgument, "%s must be an integer within ±2^53, got %v", key, f[key].AsInterface())
	}
	return int(v), nil
}

func newStruct(m map[string]any) (*structpb.Struct, error) {
	st, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return st, nil
}

// toStatus maps domain errors onto gRPC codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, library.ErrUnknownCurve):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, curve.ErrDomain),
		errors.Is(err, curve.ErrCalibration),
		errors.Is(err, scan.ErrInvalidRange),
		errors.Is(err, verify.ErrHistogramRange),
		errors.Is(err, sampler.ErrInvalidMean),
		errors.Is(err, sampler.ErrInvalidStdDev):
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, fmt.Sprintf("internal: %v", err))
}

// RegisterCurveServer registers srv on s.
func RegisterCurveServer(s grpc.ServiceRegistrar, srv CurveServer) {
	s.RegisterService(&serviceDesc, srv)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CurveServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListCurves", Handler: unaryHandler(methodListCurves, CurveServer.ListCurves)},
		{MethodName: "Scan", Handler: unaryHandler(methodScan, CurveServer.Scan)},
		{MethodName: "Sample", Handler: unaryHandler(methodSample, CurveServer.Sample)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "curves/v1/curves.proto",
}

type unaryMethod func(CurveServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CurveServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CurveServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}
