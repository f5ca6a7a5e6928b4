// utils/response.go - Response envelope shared by every endpoint
package utils

import "github.com/gofiber/fiber/v2"

// RsData is the wire envelope: a "<httpStatus>-<subcode>" result code, a
// human-readable message and an optional payload.
type RsData struct {
	ResultCode string      `json:"resultCode"`
	Msg        string      `json:"msg"`
	Data       interface{} `json:"data,omitempty"`
}

// Send writes an RsData response, deriving the HTTP status from the result
// code prefix.
func Send(c *fiber.Ctx, resultCode, msg string, data interface{}) error {
	return c.Status(StatusOf(resultCode)).JSON(RsData{
		ResultCode: resultCode,
		Msg:        msg,
		Data:       data,
	})
}

// OK writes a "200-1" envelope.
func OK(c *fiber.Ctx, msg string, data interface{}) error {
	return Send(c, "200-1", msg, data)
}

// Created writes a "201-1" envelope.
func Created(c *fiber.Ctx, msg string, data interface{}) error {
	return Send(c, "201-1", msg, data)
}
