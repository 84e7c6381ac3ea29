package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerStateResource(srv, svc)
	registerMonthTemplate(srv, svc)
}

func registerStateResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"monthgrid://state",
		"Saved Month",
		mcp.WithResourceDescription("The month and selection last saved by the interactive calendar."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		dto, err := svc.State(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, dto)
	})
}

func registerMonthTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"monthgrid://months/{month}",
		"Month Grid",
		mcp.WithTemplateDescription("Grid cells for a YYYY-MM month."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		month := templateArg(request.Params.Arguments["month"])
		if month == "" {
			return nil, fmt.Errorf("month is required")
		}

		dto, err := svc.Month(ctx, MonthOptions{Month: month})
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, dto)
	})
}

// templateArg unwraps a URI template variable, which may arrive as a string
// or as a single element list.
func templateArg(v any) string {
	switch a := v.(type) {
	case string:
		return a
	case []string:
		if len(a) > 0 {
			return a[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
