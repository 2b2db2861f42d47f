package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/robokoder/processor/errors"
	"github.com/robokoder/processor/processor"
	"github.com/robokoder/processor/validation"
)

// Built-in kinds.
const (
	KindBasic  = "basic"
	KindNames  = "names"
	KindPrefix = "prefix"
	KindStatic = "static"
)

// RegisterBuiltins registers the built-in kinds on r:
//
//	basic   exact name match      options: match, output, status
//	names   any of several names  options: names, output, status
//	prefix  name prefix match     options: prefix, output, status
//	static  matches every request options: output, status
func RegisterBuiltins(r *Registry) {
	r.RegisterFactory(KindBasic, newBasic)
	r.RegisterFactory(KindNames, newNames)
	r.RegisterFactory(KindPrefix, newPrefix)
	r.RegisterFactory(KindStatic, newStatic)
}

type basicOptions struct {
	Match  string `mapstructure:"match" validate:"required"`
	Output any    `mapstructure:"output"`
	Status string `mapstructure:"status"`
}

type namesOptions struct {
	Names  []string `mapstructure:"names" validate:"required,min=1,dive,required"`
	Output any      `mapstructure:"output"`
	Status string   `mapstructure:"status"`
}

type prefixOptions struct {
	Prefix string `mapstructure:"prefix" validate:"required"`
	Output any    `mapstructure:"output"`
	Status string `mapstructure:"status"`
}

type staticOptions struct {
	Output any    `mapstructure:"output"`
	Status string `mapstructure:"status"`
}

func newBasic(opts map[string]any) (processor.Processor, error) {
	var o basicOptions
	if err := decode(opts, &o); err != nil {
		return nil, err
	}
	status, err := parseStatus(o.Status)
	if err != nil {
		return nil, err
	}
	return processor.NewBasic(o.Match, o.Output, processor.WithStatus(status)), nil
}

func newNames(opts map[string]any) (processor.Processor, error) {
	var o namesOptions
	if err := decode(opts, &o); err != nil {
		return nil, err
	}
	status, err := parseStatus(o.Status)
	if err != nil {
		return nil, err
	}
	return fixed(processor.MatchName(o.Names...), o.Output, status), nil
}

func newPrefix(opts map[string]any) (processor.Processor, error) {
	var o prefixOptions
	if err := decode(opts, &o); err != nil {
		return nil, err
	}
	status, err := parseStatus(o.Status)
	if err != nil {
		return nil, err
	}
	return fixed(processor.MatchPrefix(o.Prefix), o.Output, status), nil
}

func newStatic(opts map[string]any) (processor.Processor, error) {
	var o staticOptions
	if err := decode(opts, &o); err != nil {
		return nil, err
	}
	status, err := parseStatus(o.Status)
	if err != nil {
		return nil, err
	}
	all := func(context.Context, *processor.Request) bool { return true }
	return fixed(all, o.Output, status), nil
}

func fixed(match processor.Predicate, output any, status processor.StatusCode) processor.Processor {
	return processor.Func{
		SupportsFn: match,
		ProcessFn: func(_ context.Context, req *processor.Request) (*processor.Response, error) {
			return processor.NewResponse(req, output, status), nil
		},
	}
}

// decode fills target from opts, rejecting unknown keys, and validates it.
func decode(opts map[string]any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return errors.Internal(err)
	}
	if err := dec.Decode(opts); err != nil {
		return errors.InvalidConfig("invalid options").WithCause(err)
	}
	return validation.Validate(target)
}

// parseStatus accepts a status name such as "NOT_FOUND" or a number.
// Empty means StatusOK.
func parseStatus(s string) (processor.StatusCode, error) {
	if s == "" {
		return processor.StatusOK, nil
	}
	if code, ok := processor.ParseStatus(strings.ToUpper(s)); ok {
		return code, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 100 || n > 599 {
		return 0, errors.InvalidConfig(fmt.Sprintf("unknown status %q", s)).WithDetail("field", "status")
	}
	return processor.StatusCode(n), nil
}
