// Package main provides the Born compute CLI.
//
// It builds tensors from flags, runs one operation on the selected device and
// prints the result:
//
//	borncompute -op add -shape 2,2 -a 1,2,3,4 -b 5,6,7,8
//	borncompute -op transpose -shape 2,3 -a 1,2,3,4,5,6 -dtype int64
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/compute/device"
	"github.com/born-ml/compute/device/cpu"
	"github.com/born-ml/compute/device/webgpu"
	"github.com/born-ml/compute/tensor"
)

const version = "v0.0.1-dev"

type options struct {
	op      string
	shape   string
	a       string
	b       string
	device  string
	dtype   string
	version bool
}

func main() {
	klog.InitFlags(nil)

	var opts options
	flag.StringVar(&opts.op, "op", "add", "operation: add, mul or transpose")
	flag.StringVar(&opts.shape, "shape", "", "comma-separated tensor shape, e.g. 2,3")
	flag.StringVar(&opts.a, "a", "", "comma-separated values of the first operand")
	flag.StringVar(&opts.b, "b", "", "comma-separated values of the second operand")
	flag.StringVar(&opts.device, "device", "cpu", "execution device: cpu or webgpu")
	flag.StringVar(&opts.dtype, "dtype", "float64", "element type: float64 or int64")
	flag.BoolVar(&opts.version, "version", false, "print version and exit")
	flag.Parse()
	defer klog.Flush()

	if opts.version {
		fmt.Printf("Born compute %s\n", version)
		return
	}

	if err := execute(context.Background(), os.Stdout, opts, openDevice); err != nil {
		klog.Exitf("%s: %v", opts.op, err)
	}
}

// execute opens the requested device, runs one operation on it and releases
// the device before returning.
func execute(ctx context.Context, w io.Writer, opts options, open func(string) (device.Device, func(), error)) error {
	d, release, err := open(opts.device)
	if err != nil {
		return errors.Wrap(err, "open device")
	}
	defer release()

	switch opts.dtype {
	case "float64":
		return run(ctx, w, d, opts, parseFloat)
	case "int64":
		return run(ctx, w, d, opts, parseInt)
	default:
		return errors.Errorf("unsupported dtype %q", opts.dtype)
	}
}

func openDevice(name string) (device.Device, func(), error) {
	switch name {
	case "cpu":
		d, err := cpu.New(cpu.DefaultConfig())
		if err != nil {
			return nil, nil, err
		}
		return d, func() {}, nil
	case "webgpu":
		d, err := webgpu.New()
		if err != nil {
			return nil, nil, err
		}
		return d, d.Release, nil
	default:
		return nil, nil, errors.Errorf("unknown device %q", name)
	}
}

func run[T tensor.DType](ctx context.Context, w io.Writer, d device.Device, opts options, parse func(string) (T, error)) error {
	shape, err := parseShape(opts.shape)
	if err != nil {
		return err
	}
	a, err := parseTensor(shape, opts.a, parse)
	if err != nil {
		return errors.Wrap(err, "operand a")
	}

	var op func() (*tensor.Tensor[T], error)
	switch opts.op {
	case "add", "mul":
		b, err := parseTensor(shape, opts.b, parse)
		if err != nil {
			return errors.Wrap(err, "operand b")
		}
		if opts.op == "add" {
			op = func() (*tensor.Tensor[T], error) { return tensor.Add(a, b) }
		} else {
			op = func() (*tensor.Tensor[T], error) { return tensor.Mul(a, b) }
		}
	case "transpose":
		op = func() (*tensor.Tensor[T], error) { return tensor.Transpose(a), nil }
	default:
		return errors.Errorf("unknown op %q", opts.op)
	}

	res, err := device.Execute(ctx, d, func() (*device.Shared[*tensor.Tensor[T]], error) {
		out, err := op()
		if err != nil {
			return nil, err
		}
		return device.NewShared(out), nil
	}).Await(ctx)
	if err != nil {
		return err
	}
	defer res.Release()

	klog.V(2).InfoS("operation finished", "op", opts.op, "device", d.Name())
	out := res.Value()
	_, err = fmt.Fprintf(w, "shape: %v\ndata: %v\n", out.Shape(), out.Data())
	return err
}

func parseShape(s string) (tensor.Shape, error) {
	if strings.TrimSpace(s) == "" {
		return tensor.Shape{}, nil
	}
	dims, err := parseList(s, strconv.Atoi)
	if err != nil {
		return nil, errors.Wrap(err, "parse shape")
	}
	return tensor.Shape(dims), nil
}

func parseTensor[T tensor.DType](shape tensor.Shape, s string, parse func(string) (T, error)) (*tensor.Tensor[T], error) {
	values, err := parseList(s, parse)
	if err != nil {
		return nil, err
	}
	return tensor.New(shape, values)
}

func parseList[T any](s string, parse func(string) (T, error)) ([]T, error) {
	if strings.TrimSpace(s) == "" {
		return []T{}, nil
	}
	fields := strings.Split(s, ",")
	out := make([]T, 0, len(fields))
	for i, f := range fields {
		v, err := parse(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
