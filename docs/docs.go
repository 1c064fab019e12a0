package docs

import "github.com/swaggo/swag"

const docTemplate = `{
  "swagger": "2.0",
  "info": {
    "title": "Feedback AI",
    "description": "Collects star ratings and reviews and drafts replies with a text-generation provider",
    "version": "1.0"
  },
  "basePath": "/",
  "paths": {
    "/submit": {
      "post": {
        "summary": "Submit a review",
        "consumes": ["application/json"],
        "produces": ["application/json"],
        "parameters": [{
          "in": "body",
          "name": "body",
          "required": true,
          "schema": {
            "type": "object",
            "required": ["rating", "review"],
            "properties": {
              "rating": {"type": "integer", "minimum": 1, "maximum": 5},
              "review": {"type": "string", "maxLength": 1000}
            }
          }
        }],
        "responses": {
          "200": {"description": "review stored, body carries ai_response"},
          "400": {"description": "validation error"},
          "500": {"description": "review could not be stored"}
        }
      }
    },
    "/export": {
      "get": {
        "summary": "All reviews as a JSON array",
        "produces": ["application/json"],
        "responses": {"200": {"description": "array of reviews"}}
      }
    },
    "/api/stats": {
      "get": {
        "summary": "Total, average rating, per-rating counts and AI status",
        "produces": ["application/json"],
        "responses": {"200": {"description": "statistics"}}
      }
    }
  }
}`

func init() {
	swag.Register(swag.Name, &s{})
}

type s struct{}

func (s *s) ReadDoc() string {
	return docTemplate
}
