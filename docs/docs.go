// Package docs holds the OpenAPI document of the receiving API and registers
// it with swag so gin-swagger can serve it under /swagger.
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/receiving/slips": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "receiving-slips"
                ],
                "summary": "List receiving slips",
                "description": "Retrieve a paginated list of receiving slips, newest receipt date first",
                "operationId": "listReceivingSlips",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Case-insensitive match on supplier or reference number",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Receipt date lower bound, inclusive (YYYY-MM-DD)",
                        "name": "date_from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Receipt date upper bound, inclusive (YYYY-MM-DD)",
                        "name": "date_to",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Status filter",
                        "name": "status",
                        "in": "query",
                        "enum": [
                            "DRAFT",
                            "CONFIRMED"
                        ]
                    },
                    {
                        "type": "integer",
                        "description": "Page number; values below 1 select page 1",
                        "name": "page",
                        "in": "query",
                        "default": 1
                    },
                    {
                        "type": "integer",
                        "description": "Page size; out-of-range values select the default",
                        "name": "page_size",
                        "in": "query",
                        "default": 20
                    },
                    {
                        "type": "string",
                        "description": "Sort field",
                        "name": "order_by",
                        "in": "query",
                        "enum": [
                            "receipt_date",
                            "reference_no",
                            "supplier",
                            "created_at",
                            "id"
                        ]
                    },
                    {
                        "type": "string",
                        "description": "Sort direction",
                        "name": "order_dir",
                        "in": "query",
                        "enum": [
                            "asc",
                            "desc"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/receiving.SlipListItemResponse"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "receiving-slips"
                ],
                "summary": "Create a receiving slip",
                "description": "Create a Draft receiving slip with at least one item",
                "operationId": "createReceivingSlip",
                "parameters": [
                    {
                        "description": "Slip creation request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.CreateSlipRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/receiving.CreateSlipResult"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    },
                    "413": {
                        "description": "Request Entity Too Large",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    }
                }
            }
        },
        "/receiving/slips/stats/summary": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "receiving-slips"
                ],
                "summary": "Get slip status summary",
                "description": "Count receiving slips per status",
                "operationId": "getReceivingSlipSummary",
                "parameters": [],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/receiving.SlipStatusSummary"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    }
                }
            }
        },
        "/receiving/slips/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "receiving-slips"
                ],
                "summary": "Get receiving slip by ID",
                "description": "Retrieve a receiving slip with its items and totals",
                "operationId": "getReceivingSlipById",
                "parameters": [
                    {
                        "type": "integer",
                        "format": "int64",
                        "description": "Slip ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/receiving.SlipResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "receiving-slips"
                ],
                "summary": "Delete a receiving slip",
                "description": "Delete a Draft receiving slip and its items",
                "operationId": "deleteReceivingSlip",
                "parameters": [
                    {
                        "type": "integer",
                        "format": "int64",
                        "description": "Slip ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    }
                }
            }
        },
        "/receiving/slips/{id}/items": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "receiving-slip-items"
                ],
                "summary": "List slip items",
                "description": "Retrieve the items of a receiving slip in entry order",
                "operationId": "listReceivingSlipItems",
                "parameters": [
                    {
                        "type": "integer",
                        "format": "int64",
                        "description": "Slip ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/receiving.SlipItemResponse"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "receiving-slip-items"
                ],
                "summary": "Add an item to a slip",
                "description": "Add a line item to a Draft receiving slip",
                "operationId": "addReceivingSlipItem",
                "parameters": [
                    {
                        "type": "integer",
                        "format": "int64",
                        "description": "Slip ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Item request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.SlipItemRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/receiving.SlipItemResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    }
                }
            }
        },
        "/receiving/slips/{id}/confirm": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "receiving-slips"
                ],
                "summary": "Confirm a receiving slip",
                "description": "Confirm a Draft slip and add its quantities to product stock in one transaction",
                "operationId": "confirmReceivingSlip",
                "parameters": [
                    {
                        "type": "integer",
                        "format": "int64",
                        "description": "Slip ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/receiving.ConfirmSlipResult"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    }
                }
            }
        },
        "/receiving/slips/{id}/export": {
            "get": {
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
                    "application/json"
                ],
                "tags": [
                    "receiving-slips"
                ],
                "summary": "Export a receiving slip",
                "description": "Download the slip as an XLSX workbook",
                "operationId": "exportReceivingSlip",
                "parameters": [
                    {
                        "type": "integer",
                        "format": "int64",
                        "description": "Slip ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    }
                }
            }
        },
        "/receiving/slip-items/{item_id}": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "receiving-slip-items"
                ],
                "summary": "Update a slip item",
                "description": "Overwrite every field of an item on a Draft slip and recompute its total",
                "operationId": "updateReceivingSlipItem",
                "parameters": [
                    {
                        "type": "integer",
                        "format": "int64",
                        "description": "Item ID",
                        "name": "item_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Item request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.SlipItemRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/receiving.SlipItemResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "receiving-slip-items"
                ],
                "summary": "Delete a slip item",
                "description": "Remove an item from a Draft slip",
                "operationId": "deleteReceivingSlipItem",
                "parameters": [
                    {
                        "type": "integer",
                        "format": "int64",
                        "description": "Item ID",
                        "name": "item_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    }
                }
            }
        },
        "/system/info": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "system"
                ],
                "summary": "Get system information",
                "description": "Returns service name, version and uptime",
                "operationId": "getSystemInfo",
                "parameters": [],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/handler.SystemInfoResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    }
                }
            }
        },
        "/system/ping": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "system"
                ],
                "summary": "Ping the API",
                "description": "Simple ping endpoint to check if the API is responsive",
                "operationId": "pingSystem",
                "parameters": [],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Response"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorInfo": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string",
                    "example": "ERR_VALIDATION"
                },
                "details": {
                    "type": "object",
                    "additionalProperties": true
                },
                "fields": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ValidationDetail"
                    }
                },
                "message": {
                    "type": "string",
                    "example": "Invalid input provided"
                },
                "request_id": {
                    "type": "string"
                }
            }
        },
        "dto.Meta": {
            "type": "object",
            "properties": {
                "page": {
                    "type": "integer",
                    "example": 1
                },
                "page_size": {
                    "type": "integer",
                    "example": 20
                },
                "total": {
                    "type": "integer",
                    "format": "int64",
                    "example": 25
                },
                "total_pages": {
                    "type": "integer",
                    "example": 2
                }
            }
        },
        "dto.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {
                    "$ref": "#/definitions/dto.ErrorInfo"
                },
                "meta": {
                    "$ref": "#/definitions/dto.Meta"
                },
                "success": {
                    "type": "boolean",
                    "example": true
                }
            }
        },
        "dto.ValidationDetail": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string",
                    "example": "supplier"
                },
                "message": {
                    "type": "string",
                    "example": "This field is required"
                }
            }
        },
        "handler.CreateSlipRequest": {
            "type": "object",
            "required": [
                "items",
                "receipt_date",
                "reference_no",
                "supplier"
            ],
            "properties": {
                "items": {
                    "type": "array",
                    "minItems": 1,
                    "items": {
                        "$ref": "#/definitions/handler.SlipItemRequest"
                    }
                },
                "note": {
                    "type": "string",
                    "example": "Partial delivery",
                    "maxLength": 500
                },
                "receipt_date": {
                    "type": "string",
                    "example": "2026-03-14"
                },
                "reference_no": {
                    "type": "string",
                    "example": "RS-2026-0001",
                    "maxLength": 50
                },
                "supplier": {
                    "type": "string",
                    "example": "Acme Fasteners",
                    "maxLength": 200
                }
            }
        },
        "handler.SlipItemRequest": {
            "type": "object",
            "required": [
                "product_name",
                "quantity"
            ],
            "properties": {
                "product_id": {
                    "type": "integer",
                    "format": "int64",
                    "example": 42
                },
                "product_name": {
                    "type": "string",
                    "example": "M8 hex bolt",
                    "maxLength": 200
                },
                "quantity": {
                    "type": "integer",
                    "format": "int64",
                    "example": 10,
                    "maximum": 1000000000,
                    "minimum": 1
                },
                "unit": {
                    "type": "string",
                    "example": "box",
                    "maxLength": 50
                },
                "unit_price": {
                    "type": "string",
                    "example": "12.5000"
                }
            }
        },
        "handler.SystemInfoResponse": {
            "type": "object",
            "properties": {
                "go_version": {
                    "type": "string",
                    "example": "go1.25.5"
                },
                "name": {
                    "type": "string",
                    "example": "receiving-service"
                },
                "uptime": {
                    "type": "string",
                    "example": "1h2m3s"
                },
                "version": {
                    "type": "string",
                    "example": "1.0.0"
                }
            }
        },
        "receiving.ConfirmSlipResult": {
            "type": "object",
            "properties": {
                "applied": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/receiving.StockIncrementResponse"
                    }
                },
                "confirmed_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "id": {
                    "type": "integer",
                    "format": "int64",
                    "example": 1
                },
                "reference_no": {
                    "type": "string",
                    "example": "RS-2026-0001"
                },
                "status": {
                    "type": "string",
                    "example": "CONFIRMED"
                }
            }
        },
        "receiving.CreateSlipResult": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "format": "int64",
                    "example": 1
                },
                "reference_no": {
                    "type": "string",
                    "example": "RS-2026-0001"
                }
            }
        },
        "receiving.SlipItemResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "format": "int64",
                    "example": 7
                },
                "product_id": {
                    "type": "integer",
                    "format": "int64",
                    "example": 42
                },
                "product_name": {
                    "type": "string",
                    "example": "M8 hex bolt"
                },
                "quantity": {
                    "type": "integer",
                    "format": "int64",
                    "example": 10
                },
                "slip_id": {
                    "type": "integer",
                    "format": "int64",
                    "example": 1
                },
                "total": {
                    "type": "string",
                    "example": "125.0000"
                },
                "unit": {
                    "type": "string",
                    "example": "box"
                },
                "unit_price": {
                    "type": "string",
                    "example": "12.5000"
                }
            }
        },
        "receiving.SlipListItemResponse": {
            "type": "object",
            "properties": {
                "confirmed_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "id": {
                    "type": "integer",
                    "format": "int64",
                    "example": 1
                },
                "note": {
                    "type": "string"
                },
                "receipt_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "reference_no": {
                    "type": "string",
                    "example": "RS-2026-0001"
                },
                "status": {
                    "type": "string",
                    "example": "DRAFT",
                    "enum": [
                        "DRAFT",
                        "CONFIRMED"
                    ]
                },
                "supplier": {
                    "type": "string",
                    "example": "Acme Fasteners"
                }
            }
        },
        "receiving.SlipResponse": {
            "type": "object",
            "properties": {
                "confirmed_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "id": {
                    "type": "integer",
                    "format": "int64",
                    "example": 1
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/receiving.SlipItemResponse"
                    }
                },
                "note": {
                    "type": "string"
                },
                "receipt_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "reference_no": {
                    "type": "string",
                    "example": "RS-2026-0001"
                },
                "status": {
                    "type": "string",
                    "example": "DRAFT",
                    "enum": [
                        "DRAFT",
                        "CONFIRMED"
                    ]
                },
                "supplier": {
                    "type": "string",
                    "example": "Acme Fasteners"
                },
                "total_amount": {
                    "type": "string",
                    "example": "125.0000"
                },
                "total_quantity": {
                    "type": "integer",
                    "format": "int64",
                    "example": 10
                }
            }
        },
        "receiving.SlipStatusSummary": {
            "type": "object",
            "properties": {
                "confirmed": {
                    "type": "integer",
                    "format": "int64",
                    "example": 3
                },
                "draft": {
                    "type": "integer",
                    "format": "int64",
                    "example": 2
                },
                "total": {
                    "type": "integer",
                    "format": "int64",
                    "example": 5
                }
            }
        },
        "receiving.StockIncrementResponse": {
            "type": "object",
            "properties": {
                "added_quantity": {
                    "type": "integer",
                    "format": "int64",
                    "example": 10
                },
                "product_id": {
                    "type": "integer",
                    "format": "int64",
                    "example": 42
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Receiving Service API",
	Description:      "Warehouse receiving slips: draft entry, confirmation and stock intake",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
