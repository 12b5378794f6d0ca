package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

// UploadField is the multipart field carrying an uploaded file.
const UploadField = "file"

// Response messages.
const (
	MsgGiftBoxNotFound   = "Gift box not found."
	MsgCarouselNotFound  = "Carousel config not found."
	MsgImportNotFound    = "Import run not found."
	MsgCarouselExists    = "Carousel already exists. Use PUT to replace."
	MsgTooManyImages     = "Too many images. Max is 12 total per gift box."
	MsgRemoveImages      = "Provide images: string[] to remove."
	MsgNoFile            = "No file uploaded."
	MsgRowsInvalid       = "Validation failed for some rows."
	MsgValidationFailed  = "Validation failed"
	MsgBodyTooLarge      = "request body too large"
	MsgInvalidJSON       = "invalid JSON body"
	MsgInternal          = "Internal Server Error"
	MsgUnsupportedFormat = "format must be one of: "
)
