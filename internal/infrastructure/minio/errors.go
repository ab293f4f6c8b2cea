package minio

import "errors"

var errPartialBatch = errors.New("batch delete partially failed")
