package testutil

import (
	"context"
	"errors"
	"sync"
)

// FakeBankClient records transfers and optionally fails them, standing in
// for the custody service in unit tests.
type FakeBankClient struct {
	mu        sync.Mutex
	transfers []Transfer
	FailNext  bool
}

type Transfer struct {
	From   string
	To     string
	Amount uint64
}

func NewFakeBankClient() *FakeBankClient {
	return &FakeBankClient{}
}

func (c *FakeBankClient) Transfer(ctx context.Context, from, to string, amount uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.FailNext {
		c.FailNext = false
		return errors.New("transfer rejected")
	}
	c.transfers = append(c.transfers, Transfer{From: from, To: to, Amount: amount})
	return nil
}

func (c *FakeBankClient) Transfers() []Transfer {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Transfer, len(c.transfers))
	copy(out, c.transfers)
	return out
}

// FakeChainClient serves a settable tip height, standing in for the chain
// node in unit tests.
type FakeChainClient struct {
	mu     sync.Mutex
	height uint64
}

func NewFakeChainClient(height uint64) *FakeChainClient {
	return &FakeChainClient{height: height}
}

func (c *FakeChainClient) GetTipHeight(ctx context.Context) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.height, nil
}

// SetTipHeight moves the fake chain to the given height.
func (c *FakeChainClient) SetTipHeight(height uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.height = height
}

// Advance moves the fake chain forward by delta heights.
func (c *FakeChainClient) Advance(delta uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.height += delta
}
