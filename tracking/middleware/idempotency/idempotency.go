package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"encore.app/tracking/model"
)

var HeaderName = "X-Idempotency-Key"

// IdempotencyMiddleware deduplicates mutating requests carrying an
// X-Idempotency-Key header. The first request is processed and its response
// cached; a replay with the same key and body returns the cached response,
// while a replay with a different body is rejected as a conflict.
//
//encore:middleware target=tag:idempotency
func IdempotencyMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, err := extractKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	bodyHash := requestBodyHash(req)
	cacheKey := model.IdempotencyKey{
		Resource: req.Data().Path,
		Key:      key,
	}

	entry, cacheErr := IdempotencyCache.Get(req.Context(), cacheKey)
	if cacheErr != nil {
		if errors.Is(cacheErr, cache.Miss) {
			if err := markAsProcessing(req.Context(), cacheKey); err != nil {
				return middleware.Response{Err: err}
			}

			response := next(req)

			// A failed request releases the key so the client can retry.
			if response.Err != nil {
				releaseKey(req.Context(), cacheKey)
			} else {
				markAsCompleted(req.Context(), cacheKey, bodyHash, response)
			}
			return response
		}

		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"},
		}
	}

	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return middleware.Response{
			Err: &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"},
		}
	}

	switch entry.Status {
	case "processing":
		rlog.Info("concurrent request detected", "key", key)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"},
		}
	case "completed":
		return replayCachedResponse(req, next, entry, key)
	default:
		rlog.Warn("unknown idempotency entry status, processing as new request", "key", key, "status", entry.Status)
		return next(req)
	}
}

func extractKey(req middleware.Request) (string, *errs.Error) {
	var key string
	if headers := req.Data().Headers; headers != nil {
		key = headers.Get(HeaderName)
	}
	if key == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is required"}
	}
	return key, nil
}

func requestBodyHash(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}
	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request body", "error", err)
		return ""
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// replayCachedResponse rebuilds the typed response payload from the cached
// JSON. A corrupted cache entry falls through to normal processing.
func replayCachedResponse(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, key string) middleware.Response {
	if len(entry.Response) > 0 {
		rlog.Info("returning cached response", "key", key)

		responseType := req.Data().API.ResponseType
		if responseType != nil {
			responseValue := reflect.New(responseType.Elem()).Interface()
			if err := json.Unmarshal(entry.Response, responseValue); err == nil {
				return middleware.Response{Payload: responseValue}
			}
			rlog.Error("failed to unmarshal cached response", "key", key)
		}
	}
	return next(req)
}

func markAsProcessing(ctx context.Context, cacheKey model.IdempotencyKey) *errs.Error {
	if err := IdempotencyCache.Set(ctx, cacheKey, model.IdempotencyCacheEntry{
		Status:    "processing",
		CreatedAt: time.Now(),
	}); err != nil {
		rlog.Error("failed to mark request as processing", "error", err)
		return &errs.Error{Code: errs.Internal, Message: "failed to mark request as processing"}
	}
	return nil
}

func releaseKey(ctx context.Context, cacheKey model.IdempotencyKey) {
	if _, err := IdempotencyCache.Delete(ctx, cacheKey); err != nil {
		rlog.Error("failed to clear failed request from cache", "error", err)
	}
}

func markAsCompleted(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash string, response middleware.Response) {
	entry := model.IdempotencyCacheEntry{
		Status:          "completed",
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}

	if response.Payload != nil {
		payload, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("failed to marshal response payload for caching", "error", err)
			return
		}
		entry.Response = payload
	}

	if err := IdempotencyCache.Set(ctx, cacheKey, entry); err != nil {
		rlog.Error("failed to cache successful response", "error", err)
	}
}
