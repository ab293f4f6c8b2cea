package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"petstar/internal/domain/apperr"
	"petstar/internal/domain/entity"
)

// multipartForm parses the request as multipart. Non-multipart bodies are rejected as invalid.
func multipartForm(c echo.Context) (*multipart.Form, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
			return nil, fmt.Errorf("%w: %w",
				apperr.Detail(apperr.ErrValidation, "multipart/form-data body expected"), err)
		}

		return nil, err
	}

	return form, nil
}

// bindJSONPart decodes the JSON part name into dst and validates it. The part may be sent as a
// plain form field or as a file part with an application/json body.
func bindJSONPart(c echo.Context, form *multipart.Form, name string, dst any, required bool) error {
	raw, err := jsonPart(form, name)
	if err != nil {
		return err
	}
	if raw == "" {
		if required {
			return apperr.Detail(apperr.ErrValidation, "missing request part %q", name)
		}

		return c.Validate(dst)
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: %w", apperr.Detail(apperr.ErrValidation, "malformed %q part", name), err)
	}

	return c.Validate(dst)
}

func jsonPart(form *multipart.Form, name string) (string, error) {
	if values := form.Value[name]; len(values) > 0 && strings.TrimSpace(values[0]) != "" {
		return values[0], nil
	}

	files := form.File[name]
	if len(files) == 0 {
		return "", nil
	}

	f, err := files[0].Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

func formFiles(form *multipart.Form, name string) []*entity.UploadFile {
	headers := form.File[name]
	files := make([]*entity.UploadFile, 0, len(headers))
	for _, fh := range headers {
		files = append(files, entity.NewUploadFileFromHeader(fh))
	}

	return files
}

// formFile returns the first file of part name, or nil.
func formFile(form *multipart.Form, name string) *entity.UploadFile {
	headers := form.File[name]
	if len(headers) == 0 {
		return nil
	}

	return entity.NewUploadFileFromHeader(headers[0])
}

func formValue(form *multipart.Form, name string) string {
	if values := form.Value[name]; len(values) > 0 {
		return strings.TrimSpace(values[0])
	}

	return ""
}

// bindJSON decodes a JSON body and validates it.
func bindJSON(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return fmt.Errorf("%w: %w", apperr.Detail(apperr.ErrValidation, "malformed request body"), err)
	}

	return c.Validate(dst)
}
