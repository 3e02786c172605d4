// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package algod - ledger.Gateway over the algod and indexer REST APIs
//
// Requests share a client side rate limit.  Suggested parameters are
// cached for a short time and indexed transactions, which never change
// once found, for longer.
package algod

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/go-resty/resty/v2"
	cache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/toketmaster/fault"
	"github.com/bitmark-inc/toketmaster/ledger"
	"github.com/bitmark-inc/toketmaster/transactionrecord"
)

// token headers
const (
	AlgodTokenHeader   = "X-Algo-API-Token"
	IndexerTokenHeader = "X-Indexer-API-Token"
	APIKeyHeader       = "X-API-Key"
)

const (
	defaultTimeout           = 10 * time.Second
	defaultParamsExpiry      = 2 * time.Second
	defaultIndexedExpiry     = 10 * time.Minute
	defaultCleanup           = 20 * time.Minute
	defaultRequestsPerSecond = 10
	defaultBurst             = 5

	paramsKey  = "params"
	indexedKey = "indexed:"
)

// Endpoint - where a REST service is and how to authenticate
type Endpoint struct {
	URL         string `gluamapper:"url" json:"url"`
	Token       string `gluamapper:"token" json:"token"`
	TokenHeader string `gluamapper:"token_header" json:"token_header"`
}

// RateLimit - client side request limit shared by both services
type RateLimit struct {
	RequestsPerSecond float64 `gluamapper:"requests_per_second" json:"requests_per_second"`
	Burst             int     `gluamapper:"burst" json:"burst"`
}

// Config - gateway setup
type Config struct {
	Algod     Endpoint  `gluamapper:"algod" json:"algod"`
	Indexer   Endpoint  `gluamapper:"indexer" json:"indexer"`
	RateLimit RateLimit `gluamapper:"rate_limit" json:"rate_limit"`
	Timeout   string    `gluamapper:"timeout" json:"timeout"`
}

// Gateway - REST access to a node and its indexer
type Gateway struct {
	log     *logger.L
	algod   *resty.Client
	indexer *resty.Client
	limiter *rate.Limiter
	cache   *cache.Cache
}

// New - create a gateway
//
// the indexer is optional; without it IndexedTransaction fails with
// fault.ErrIndexerNotConfigured
func New(config Config, log *logger.L) (*Gateway, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if "" == config.Algod.URL {
		return nil, fmt.Errorf("algod url: %w", fault.ErrMissingParameters)
	}

	timeout := defaultTimeout
	if "" != config.Timeout {
		d, err := time.ParseDuration(config.Timeout)
		if nil != err {
			return nil, err
		}
		timeout = d
	}

	perSecond := config.RateLimit.RequestsPerSecond
	if perSecond <= 0 {
		perSecond = defaultRequestsPerSecond
	}
	burst := config.RateLimit.Burst
	if burst <= 0 {
		burst = defaultBurst
	}

	g := &Gateway{
		log:     log,
		algod:   newClient(config.Algod, AlgodTokenHeader, timeout),
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		cache:   cache.New(defaultIndexedExpiry, defaultCleanup),
	}
	if "" != config.Indexer.URL {
		g.indexer = newClient(config.Indexer, IndexerTokenHeader, timeout)
	}

	log.Infof("algod: %s  indexer: %q  rate: %g/s burst: %d", config.Algod.URL, config.Indexer.URL, perSecond, burst)
	return g, nil
}

func newClient(endpoint Endpoint, defaultHeader string, timeout time.Duration) *resty.Client {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(endpoint.URL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if "" != endpoint.Token {
		header := endpoint.TokenHeader
		if "" == header {
			header = defaultHeader
		}
		client.SetHeader(header, endpoint.Token)
	}
	return client
}

// SuggestedParams - parameters for a new transaction
func (g *Gateway) SuggestedParams(ctx context.Context) (*transactionrecord.Params, error) {
	if cached, found := g.cache.Get(paramsKey); found {
		params := cached.(transactionrecord.Params)
		return &params, nil
	}

	var reply paramsReply
	if err := g.get(ctx, g.algod, "/v2/transactions/params", nil, &reply); nil != err {
		return nil, err
	}

	var hash [32]byte
	if len(reply.GenesisHash) != len(hash) {
		return nil, fault.ErrGenesisMismatch
	}
	copy(hash[:], reply.GenesisHash)

	params := transactionrecord.NewParams(reply.LastRound, reply.MinFee, reply.GenesisId, hash)
	params.Fee = reply.Fee
	g.cache.Set(paramsKey, *params, defaultParamsExpiry)

	g.log.Debugf("params: round: %d  min fee: %d  genesis: %s", reply.LastRound, reply.MinFee, reply.GenesisId)
	return params, nil
}

// Submit - send a signed transaction to the node
//
// a refusal by the node is a *fault.RejectedError
func (g *Gateway) Submit(ctx context.Context, signed *transactionrecord.Signed) (string, error) {
	if nil == signed {
		return "", fault.ErrMissingParameters
	}
	if err := g.limiter.Wait(ctx); nil != err {
		return "", err
	}

	var reply submitReply
	var apiErr errorReply
	resp, err := g.algod.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-binary").
		SetBody(signed.Bytes()).
		SetResult(&reply).
		SetError(&apiErr).
		Post("/v2/transactions")
	if nil != err {
		return "", err
	}

	if resp.IsError() {
		if http.StatusBadRequest == resp.StatusCode() {
			reason := apiErr.Message
			if "" == reason {
				reason = fault.ErrRejectedEmptyReason.Error()
			}
			return "", &fault.RejectedError{
				TxId:   signed.TxId,
				Reason: reason,
			}
		}
		return "", statusError(resp, apiErr)
	}

	if reply.TxId != signed.TxId {
		g.log.Warnf("submit: node txid: %s  local txid: %s", reply.TxId, signed.TxId)
	}
	return reply.TxId, nil
}

// PendingStatus - the node view of a submitted transaction
func (g *Gateway) PendingStatus(ctx context.Context, txId string) (*ledger.PendingStatus, error) {
	var reply pendingReply
	err := g.get(ctx, g.algod, "/v2/transactions/pending/{txid}", map[string]string{"txid": txId}, &reply)
	if nil != err {
		if fault.IsErrNotFound(err) {
			return nil, fault.ErrTransactionNotFound
		}
		return nil, err
	}
	return &ledger.PendingStatus{
		TxId:           txId,
		ConfirmedRound: reply.ConfirmedRound,
		AssetIndex:     reply.AssetIndex,
		PoolError:      reply.PoolError,
	}, nil
}

// AccountInfo - balance, holdings and created assets
func (g *Gateway) AccountInfo(ctx context.Context, address string) (*ledger.AccountInfo, error) {
	var reply accountReply
	err := g.get(ctx, g.algod, "/v2/accounts/{address}", map[string]string{"address": address}, &reply)
	if nil != err {
		if fault.IsErrNotFound(err) {
			return nil, fault.ErrAccountNotFound
		}
		return nil, err
	}
	return reply.info(), nil
}

// IndexedTransaction - indexer record of a confirmed transaction
func (g *Gateway) IndexedTransaction(ctx context.Context, txId string) (*ledger.TransactionRecord, error) {
	if nil == g.indexer {
		return nil, fault.ErrIndexerNotConfigured
	}
	if cached, found := g.cache.Get(indexedKey + txId); found {
		record := cached.(ledger.TransactionRecord)
		return &record, nil
	}

	var reply indexedReply
	err := g.get(ctx, g.indexer, "/v2/transactions/{txid}", map[string]string{"txid": txId}, &reply)
	if nil != err {
		if fault.IsErrNotFound(err) {
			return nil, fault.ErrTransactionNotIndexed
		}
		return nil, err
	}

	record := reply.Transaction.record()
	g.cache.Set(indexedKey+txId, record, cache.DefaultExpiration)
	return &record, nil
}

// get a JSON reply; 404 maps to fault.ErrTransactionNotFound
func (g *Gateway) get(ctx context.Context, client *resty.Client, path string, pathParams map[string]string, result interface{}) error {
	if err := g.limiter.Wait(ctx); nil != err {
		return err
	}

	var apiErr errorReply
	resp, err := client.R().
		SetContext(ctx).
		SetPathParams(pathParams).
		SetResult(result).
		SetError(&apiErr).
		Get(path)
	if nil != err {
		return err
	}

	switch {
	case http.StatusNotFound == resp.StatusCode():
		g.log.Debugf("get: %s  not found: %s", resp.Request.URL, apiErr.Message)
		return fault.ErrTransactionNotFound
	case resp.IsError():
		return statusError(resp, apiErr)
	}
	return nil
}

func statusError(resp *resty.Response, apiErr errorReply) error {
	return fmt.Errorf("%w: %d %s", fault.ErrUnexpectedHTTPStatus, resp.StatusCode(), apiErr.Message)
}
