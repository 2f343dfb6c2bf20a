// Package docs registers the OpenAPI document served at /docs/doc.json.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Gridiron"
        },
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/{league}/scoreboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Weekly scoreboard",
                "parameters": [
                    {"type": "string", "description": "League (nfl or ncaa)", "name": "league", "in": "path", "required": true},
                    {"type": "integer", "description": "Week number", "name": "week", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object"}}
                }
            }
        },
        "/{league}/season": {
            "get": {
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Season games",
                "parameters": [
                    {"type": "string", "description": "League (nfl or ncaa)", "name": "league", "in": "path", "required": true},
                    {"type": "integer", "description": "Override the current week", "name": "currentWeek", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        },
        "/{league}/weeks/current": {
            "get": {
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Current week",
                "parameters": [
                    {"type": "string", "description": "League (nfl or ncaa)", "name": "league", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "object"}}
                }
            }
        },
        "/{league}/weeks/surrounding": {
            "get": {
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Surrounding weeks",
                "parameters": [
                    {"type": "string", "description": "League (nfl or ncaa)", "name": "league", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        },
        "/{league}/teams": {
            "get": {
                "produces": ["application/json"],
                "tags": ["teams"],
                "summary": "League teams",
                "parameters": [
                    {"type": "string", "description": "League (nfl or ncaa)", "name": "league", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        },
        "/{league}/teams/{team}/games": {
            "get": {
                "produces": ["application/json"],
                "tags": ["teams"],
                "summary": "Team schedule",
                "parameters": [
                    {"type": "string", "description": "League (nfl or ncaa)", "name": "league", "in": "path", "required": true},
                    {"type": "string", "description": "Team name", "name": "team", "in": "path", "required": true},
                    {"type": "string", "description": "Set to synthetic to allow placeholder data", "name": "fallback", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "404": {"description": "Not Found", "schema": {"type": "object"}}
                }
            }
        },
        "/{league}/teams/{team}/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["teams"],
                "summary": "Team statistics",
                "parameters": [
                    {"type": "string", "description": "League (nfl or ncaa)", "name": "league", "in": "path", "required": true},
                    {"type": "string", "description": "Team name", "name": "team", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "404": {"description": "Not Found", "schema": {"type": "object"}}
                }
            }
        },
        "/{league}/teams/{team}/roster": {
            "get": {
                "produces": ["application/json"],
                "tags": ["teams"],
                "summary": "Team roster",
                "parameters": [
                    {"type": "string", "description": "League (nfl or ncaa)", "name": "league", "in": "path", "required": true},
                    {"type": "string", "description": "Team name", "name": "team", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "404": {"description": "Not Found", "schema": {"type": "object"}}
                }
            }
        },
        "/{league}/games/{eventID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Game details",
                "parameters": [
                    {"type": "string", "description": "League (nfl or ncaa)", "name": "league", "in": "path", "required": true},
                    {"type": "string", "description": "Upstream event ID", "name": "eventID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "object"}}
                }
            }
        },
        "/{league}/games/{eventID}/boxscore": {
            "get": {
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Game boxscore",
                "parameters": [
                    {"type": "string", "description": "League (nfl or ncaa)", "name": "league", "in": "path", "required": true},
                    {"type": "string", "description": "Upstream event ID", "name": "eventID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "object"}}
                }
            }
        },
        "/{league}/games/{eventID}/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Game summary players",
                "parameters": [
                    {"type": "string", "description": "League (nfl or ncaa)", "name": "league", "in": "path", "required": true},
                    {"type": "string", "description": "Upstream event ID", "name": "eventID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "object"}}
                }
            }
        },
        "/insights/game-summary": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["insights"],
                "summary": "Assistant game summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object"}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "object"}}
                }
            }
        },
        "/insights/game-details": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["insights"],
                "summary": "Assistant game details",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        },
        "/insights/quarterback-stats": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["insights"],
                "summary": "Assistant quarterback comparison",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        },
        "/insights/announcer-report": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["insights"],
                "summary": "Assistant announcer report",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        },
        "/cache/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cache"],
                "summary": "Cache statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        },
        "/cache": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["cache"],
                "summary": "Clear cache",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        },
        "/cache/expired": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["cache"],
                "summary": "Clear expired cache entries",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8090",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Gridiron Data API",
	Description:      "Football scoreboard normalization API: weekly scoreboards, season walks, team schedules and statistics, boxscore player stats, and assistant-backed game insights.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
