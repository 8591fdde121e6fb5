package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client calls curves.v1.CurveService.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) ListCurves(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, methodListCurves, &structpb.Struct{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Scan evaluates curve; zero step uses the curve's design range.
func (c *Client) Scan(ctx context.Context, curve string, from, to, step float64, opts ...grpc.CallOption) (*structpb.Struct, error) {
	req := map[string]any{"curve": curve}
	if step > 0 {
		req["from"], req["to"], req["step"] = from, to, step
	}
	in, err := structpb.NewStruct(req)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, methodScan, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Sample requests n draws from Normal(mean, stdDev²) and their summary.
func (c *Client) Sample(ctx context.Context, mean, stdDev float64, n int, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(map[string]any{"mean": mean, "std_dev": stdDev, "n": n})
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, methodSample, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
