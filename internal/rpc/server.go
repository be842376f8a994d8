// Package rpc exposes a DateFormatService gRPC server whose schema is parsed
// from an embedded .proto string at process start rather than from
// generated .pb.go stubs, using jhump/protoreflect's dynamic-message
// machinery the same way internal/evaluator/builtins_grpc.go in the teacher
// corpus lets a scripted caller stand up a gRPC service with no protoc step.
package rpc

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"strings"

	"github.com/google/uuid"
	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
	"github.com/jhump/protoreflect/dynamic"
	"google.golang.org/grpc"

	"github.com/datefmtc/datefmtc/internal/strftimecompat"
	"github.com/datefmtc/datefmtc/pkg/datefmt"
)

// loadServiceDescriptor parses the embedded schema and returns the
// DateFormatService descriptor.
func loadServiceDescriptor() (*desc.ServiceDescriptor, error) {
	parser := protoparse.Parser{
		Accessor: func(filename string) (io.ReadCloser, error) {
			if filename != schemaFile {
				return nil, fmt.Errorf("rpc: unknown proto file %q", filename)
			}
			return io.NopCloser(strings.NewReader(schemaText)), nil
		},
	}
	fds, err := parser.ParseFiles(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("rpc: parse embedded schema: %w", err)
	}
	for _, sd := range fds[0].GetServices() {
		if sd.GetName() == "DateFormatService" {
			return sd, nil
		}
	}
	return nil, fmt.Errorf("rpc: DateFormatService not found in embedded schema")
}

// handler implements the three unary RPCs by dispatching on method name
// against dynamic.Message request/response values, mirroring
// FunxyGrpcHandler.HandleUnary's shape but against this module's own
// datefmt.Compile/Parse/Format instead of a scripted function value.
type handler struct {
	sd *desc.ServiceDescriptor
}

func (h *handler) handleUnary(ctx context.Context, md *desc.MethodDescriptor, dec func(interface{}) error) (interface{}, error) {
	reqID := uuid.NewString()
	in := dynamic.NewMessage(md.GetInputType())
	if err := dec(in); err != nil {
		return nil, err
	}

	out := dynamic.NewMessage(md.GetOutputType())
	var err error
	switch md.GetName() {
	case "Format":
		err = h.format(in, out)
	case "Parse":
		err = h.parse(in, out)
	case "Translate":
		err = h.translate(in, out)
	default:
		err = fmt.Errorf("unknown method %s", md.GetName())
	}
	if err != nil {
		log.Printf("rpc[%s] %s failed: %v", reqID, md.GetName(), err)
		return nil, err
	}
	log.Printf("rpc[%s] %s ok", reqID, md.GetName())
	return out, nil
}

func getStringField(msg *dynamic.Message, name string) string {
	fd := msg.GetMessageDescriptor().FindFieldByName(name)
	if fd == nil {
		return ""
	}
	s, _ := msg.GetField(fd).(string)
	return s
}

func getInt64Field(msg *dynamic.Message, name string) int64 {
	fd := msg.GetMessageDescriptor().FindFieldByName(name)
	if fd == nil {
		return 0
	}
	v, _ := msg.GetField(fd).(int64)
	return v
}

func setField(msg *dynamic.Message, name string, val interface{}) error {
	fd := msg.GetMessageDescriptor().FindFieldByName(name)
	if fd == nil {
		return fmt.Errorf("field %s not found on %s", name, msg.GetMessageDescriptor().GetName())
	}
	msg.SetField(fd, val)
	return nil
}

func (h *handler) format(in, out *dynamic.Message) error {
	pattern := getStringField(in, "pattern")
	instant := getInt64Field(in, "instant_millis")
	zoneLabel := getStringField(in, "zone_label")

	cf, err := datefmt.Compile(pattern, false)
	if err != nil {
		return err
	}
	text := cf.FormatString(instant, nil, zoneLabel)
	return setField(out, "text", text)
}

func (h *handler) parse(in, out *dynamic.Message) error {
	pattern := getStringField(in, "pattern")
	text := getStringField(in, "text")

	cf, err := datefmt.Compile(pattern, false)
	if err != nil {
		return err
	}
	instant, err := cf.ParseString(text, nil)
	if err != nil {
		return err
	}
	return setField(out, "instant_millis", instant)
}

func (h *handler) translate(in, out *dynamic.Message) error {
	strftimeFormat := getStringField(in, "strftime_format")
	pattern, err := strftimecompat.Translate(strftimeFormat)
	if err != nil {
		return err
	}
	return setField(out, "pattern", pattern)
}

// NewServer builds a *grpc.Server with DateFormatService registered via a
// hand-built grpc.ServiceDesc, no generated .pb.go stubs involved.
func NewServer() (*grpc.Server, error) {
	sd, err := loadServiceDescriptor()
	if err != nil {
		return nil, err
	}
	h := &handler{sd: sd}

	svcDesc := &grpc.ServiceDesc{
		ServiceName: "datefmtc.DateFormatService",
		HandlerType: (*interface{})(nil),
		Metadata:    sd.GetFile().GetName(),
	}
	for _, method := range sd.GetMethods() {
		md := method
		svcDesc.Methods = append(svcDesc.Methods, grpc.MethodDesc{
			MethodName: md.GetName(),
			Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {
				return srv.(*handler).handleUnary(ctx, md, dec)
			},
		})
	}

	server := grpc.NewServer()
	server.RegisterService(svcDesc, h)
	return server, nil
}

// Serve starts a DateFormatService gRPC server listening on addr and blocks
// until it stops.
func Serve(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("rpc: listen on %s: %w", addr, err)
	}
	server, err := NewServer()
	if err != nil {
		return err
	}
	log.Printf("datefmtc rpc server listening on %s", addr)
	return server.Serve(lis)
}
