package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/outliner/pkg/edit"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerOutlineTool(srv, svc)
	registerGetNodeTool(srv, svc)
	registerGrepTool(srv, svc)
	registerFindTool(srv, svc)
	registerReportTool(srv, svc)
	registerInsertTool(srv, svc)
	registerPasteTool(srv, svc)
	registerCopyTool(srv, svc)
	registerCutTool(srv, svc)
	registerMoveTool(srv, svc)
	registerMarkTool(srv, svc)
	registerSortTool(srv, svc)
}

func pathArg() mcp.ToolOption {
	return mcp.WithString("path",
		mcp.Required(),
		mcp.Description("Document path, relative to the served directory."),
	)
}

func posArg(desc string) mcp.ToolOption {
	return mcp.WithNumber("pos",
		mcp.Required(),
		mcp.Description(desc),
		mcp.Min(1),
	)
}

func endArg() mcp.ToolOption {
	return mcp.WithNumber("end",
		mcp.Description("Last node of the range; defaults to pos."),
		mcp.Min(1),
	)
}

func registerOutlineTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_outline",
		mcp.WithDescription("List the headlines of a document with their tree positions and levels."),
		pathArg(),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		doc, err := svc.Outline(ctx, path)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(doc)
	})
}

func registerGetNodeTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_node",
		mcp.WithDescription("Fetch one node with its headline path and body lines."),
		pathArg(),
		posArg("Tree position of the node; 2 is the first headline."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		pos, err := request.RequireInt("pos")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		node, err := svc.Node(ctx, path, pos)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(node)
	})
}

func registerGrepTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"grep_nodes",
		mcp.WithDescription("Find nodes whose lines match every pattern in and, and no pattern in not."),
		pathArg(),
		mcp.WithArray("and",
			mcp.Description("Regular expressions that must all match."),
			mcp.WithStringItems(),
		),
		mcp.WithArray("not",
			mcp.Description("Regular expressions that must not match."),
			mcp.WithStringItems(),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Path string   `json:"path"`
			And  []string `json:"and"`
			Not  []string `json:"not"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		matches, err := svc.Grep(ctx, args.Path, args.And, args.Not)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"matches": matches,
			"count":   len(matches),
		})
	})
}

func registerFindTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"find_nodes",
		mcp.WithDescription("Fuzzy search headings, best match first."),
		pathArg(),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Characters to look for, in order."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of nodes to return (default 20)."),
			mcp.Min(1),
			mcp.Max(100),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		query, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		limit := request.GetInt("limit", 20)

		matches, err := svc.Find(ctx, path, query, limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"query":   query,
			"limit":   limit,
			"matches": matches,
			"count":   len(matches),
		})
	})
}

func registerReportTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"report_marked",
		mcp.WithDescription("List the marked nodes of a document grouped by top level section."),
		pathArg(),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		res, err := svc.Report(ctx, path)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func registerInsertTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"insert_node",
		mcp.WithDescription("Insert a new headline after a node, or as its first child."),
		pathArg(),
		posArg("Node to insert after; 1 inserts at the top of the document."),
		mcp.WithBoolean("child",
			mcp.Description("Insert as the first child of pos."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Path  string `json:"path"`
			Pos   int    `json:"pos"`
			Child bool   `json:"child"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		doc, err := svc.Insert(ctx, args.Path, args.Pos, args.Child)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(doc)
	})
}

func registerPasteTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"paste_nodes",
		mcp.WithDescription("Paste the clipboard after a node."),
		pathArg(),
		posArg("Node to paste after."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		pos, err := request.RequireInt("pos")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		doc, warnings, err := svc.Paste(ctx, path, pos)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"document": doc,
			"warnings": warnings,
		})
	})
}

func bindRange(request mcp.CallToolRequest) (RangeOptions, error) {
	var opts RangeOptions
	if err := request.BindArguments(&opts); err != nil {
		return opts, fmt.Errorf("invalid arguments: %w", err)
	}
	return opts, nil
}

func registerCopyTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"copy_nodes",
		mcp.WithDescription("Copy nodes and their subtrees to the clipboard."),
		pathArg(),
		posArg("First node of the range."),
		endArg(),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		opts, err := bindRange(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		text, err := svc.Copy(ctx, opts)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(text), nil
	})
}

func registerCutTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"cut_nodes",
		mcp.WithDescription("Move nodes and their subtrees to the clipboard."),
		pathArg(),
		posArg("First node of the range."),
		endArg(),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		opts, err := bindRange(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		doc, err := svc.Cut(ctx, opts)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(doc)
	})
}

func registerMoveTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"move_nodes",
		mcp.WithDescription("Move nodes one step up, down, right (demote) or left (promote)."),
		pathArg(),
		posArg("First node of the range."),
		endArg(),
		mcp.WithString("direction",
			mcp.Required(),
			mcp.Enum("up", "down", "right", "left"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		opts, err := bindRange(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		direction, err := request.RequireString("direction")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		doc, err := svc.Move(ctx, opts, direction)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(doc)
	})
}

func registerMarkTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"mark_nodes",
		mcp.WithDescription("Set or clear the mark flag of nodes."),
		pathArg(),
		posArg("First node of the range."),
		endArg(),
		mcp.WithBoolean("unmark",
			mcp.Description("Clear the flag instead of setting it."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		opts, err := bindRange(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		doc, err := svc.Mark(ctx, opts, request.GetBool("unmark", false))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(doc)
	})
}

func registerSortTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"sort_siblings",
		mcp.WithDescription("Sort a node and its siblings by heading."),
		pathArg(),
		posArg("Any node of the sibling group."),
		mcp.WithBoolean("ignore_case", mcp.Description("Compare without regard to case.")),
		mcp.WithBoolean("reverse", mcp.Description("Sort in descending order.")),
		mcp.WithBoolean("flip", mcp.Description("Reverse the current order instead of sorting.")),
		mcp.WithBoolean("deep", mcp.Description("Sort the children of every sibling too.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Path       string `json:"path"`
			Pos        int    `json:"pos"`
			IgnoreCase bool   `json:"ignore_case"`
			Reverse    bool   `json:"reverse"`
			Flip       bool   `json:"flip"`
			Deep       bool   `json:"deep"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		doc, status, err := svc.Sort(ctx, args.Path, args.Pos, edit.SortOptions{
			IgnoreCase: args.IgnoreCase,
			Reverse:    args.Reverse,
			Flip:       args.Flip,
			Deep:       args.Deep,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"status":   status,
			"document": doc,
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
