package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerMonthGridTool(srv, svc)
	registerDateForDayTool(srv, svc)
	registerSavedStateTool(srv, svc)
}

func registerMonthGridTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"month_grid",
		mcp.WithDescription("Lay out a month as a Sunday-first grid of day cells."),
		mcp.WithString("month",
			mcp.Description("Month to display as YYYY-MM. Defaults to the current month, or the selected date's month."),
		),
		mcp.WithString("selected",
			mcp.Description("Optional selected date as YYYY-MM-DD. Its week is reported as the highlight band."),
		),
		mcp.WithBoolean("match_year",
			mcp.Description("Require the selected date's year to match the displayed month."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Month     string `json:"month"`
			Selected  string `json:"selected"`
			MatchYear bool   `json:"match_year"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.Month(ctx, MonthOptions{
			Month:     args.Month,
			Selected:  args.Selected,
			MatchYear: args.MatchYear,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDateForDayTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"date_for_day",
		mcp.WithDescription("Resolve a day number within a month to a calendar date. Out of range numbers roll into adjacent months."),
		mcp.WithString("month",
			mcp.Required(),
			mcp.Description("Month as YYYY-MM."),
		),
		mcp.WithNumber("day",
			mcp.Required(),
			mcp.Description("Day number; 0 is the last day of the previous month."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		month, err := request.RequireString("month")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		day, err := request.RequireInt("day")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.DateForDay(ctx, month, day)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSavedStateTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"saved_month",
		mcp.WithDescription("Lay out the month last shown by the interactive calendar, with its selection."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.State(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
