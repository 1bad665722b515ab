package cache

import (
	"context"
	"slices"
	"sync"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/returns"
)

// OrderCache keeps completed orders in memory in front of an order gateway.
// Completed orders no longer change, so they never go stale; orders in any
// other status always hit the gateway.
type OrderCache struct {
	returns.OrderGateway

	mu        sync.RWMutex
	cache     map[int64]*returns.Order
	completed []float64
	logger    *zap.Logger
}

func NewOrderCache(gateway returns.OrderGateway, completedStatuses []float64, logger *zap.Logger) *OrderCache {
	return &OrderCache{
		OrderGateway: gateway,
		cache:        make(map[int64]*returns.Order),
		completed:    completedStatuses,
		logger:       logger,
	}
}

func (c *OrderCache) FindOrderByID(ctx context.Context, id int64) (*returns.Order, error) {
	if order, found := c.Get(id); found {
		return order, nil
	}
	order, err := c.OrderGateway.FindOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order != nil {
		c.Set(order)
	}
	return order, nil
}

func (c *OrderCache) Get(orderID int64) (*returns.Order, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	order, found := c.cache[orderID]
	if !found {
		return nil, false
	}
	orderCopy := *order
	return &orderCopy, true
}

func (c *OrderCache) Set(order *returns.Order) {
	if !slices.Contains(c.completed, order.StatusID) {
		c.Delete(order.ID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	orderCopy := *order
	c.cache[order.ID] = &orderCopy
	c.logger.Debug("order cached", zap.Int64("order_id", order.ID), zap.Float64("status_id", order.StatusID))
}

func (c *OrderCache) Delete(orderID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.cache[orderID]; found {
		delete(c.cache, orderID)
		c.logger.Debug("order evicted", zap.Int64("order_id", orderID))
	}
}

func (c *OrderCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}
