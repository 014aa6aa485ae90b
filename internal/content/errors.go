package content

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	contentReadFailedCode  = "CONTENT_READ_FAILED"
	contentParseFailedCode = "CONTENT_PARSE_FAILED"
)

func wrapReadError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryInternal, "content read failed").
		WithTextCode(contentReadFailedCode)
}

func wrapParseError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "content parse failed").
		WithTextCode(contentParseFailedCode)
}
