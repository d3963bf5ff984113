package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const documentsURI = "outline://documents"

// templateReader loads the payload behind one resource template.
type templateReader func(ctx context.Context, svc *Service, args map[string]any) (any, error)

type resourceTemplate struct {
	uri, name, description string
	read                   templateReader
}

var resourceTemplates = []resourceTemplate{{
	uri:         documentsURI + "/{name}",
	name:        "Document Outline",
	description: "Headlines of a document in the served directory.",
	read: func(ctx context.Context, svc *Service, args map[string]any) (any, error) {
		name, err := documentArg(args)
		if err != nil {
			return nil, err
		}
		return svc.Outline(ctx, name)
	},
}, {
	uri:         documentsURI + "/{name}/nodes/{pos}",
	name:        "Outline Node",
	description: "One node of a document with its headline path and body lines.",
	read: func(ctx context.Context, svc *Service, args map[string]any) (any, error) {
		name, err := documentArg(args)
		if err != nil {
			return nil, err
		}
		pos, err := strconv.Atoi(templateArg(args["pos"]))
		if err != nil {
			return nil, errors.New("node position must be a number")
		}
		return svc.Node(ctx, name, pos)
	},
}, {
	uri:         documentsURI + "/{name}/marked",
	name:        "Marked Nodes",
	description: "Marked nodes of a document grouped by top level section.",
	read: func(ctx context.Context, svc *Service, args map[string]any) (any, error) {
		name, err := documentArg(args)
		if err != nil {
			return nil, err
		}
		return svc.Report(ctx, name)
	},
}}

func registerResources(srv *server.MCPServer, svc *Service) {
	documents := mcp.NewResource(
		documentsURI,
		"Documents",
		mcp.WithResourceDescription("Documents opened by the server so far, relative to its root."),
		mcp.WithMIMEType("application/json"),
	)
	srv.AddResource(documents, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		docs, err := svc.Documents(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"documents": docs,
			"count":     len(docs),
		})
	})

	for _, rt := range resourceTemplates {
		read := rt.read
		template := mcp.NewResourceTemplate(
			rt.uri,
			rt.name,
			mcp.WithTemplateDescription(rt.description),
			mcp.WithTemplateMIMEType("application/json"),
		)
		srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			payload, err := read(ctx, svc, request.Params.Arguments)
			if err != nil {
				return nil, err
			}
			return encodeResourceJSON(request.Params.URI, payload)
		})
	}
}

func documentArg(args map[string]any) (string, error) {
	name := templateArg(args["name"])
	if name == "" {
		return "", errors.New("document name is required")
	}
	return name, nil
}

// templateArg reads a URI template variable, which arrives as a string or
// a list of strings.
func templateArg(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
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
