package service

import (
	"context"
	"net/http"

	"github.com/eaugeas/linkedbst/container/tree"
	errs "github.com/eaugeas/linkedbst/errors"
	"github.com/eaugeas/linkedbst/logs"
	"github.com/eaugeas/linkedbst/rpcs"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var (
	ErrItemsMissing = errs.New(errs.ErrCodeInvalidItem, "at least one item must be provided")
	ErrItemEmpty    = errs.New(errs.ErrCodeInvalidItem, "items cannot be empty")
	ErrRangeInvalid = errs.New(errs.ErrCodeInvalidRange, "low must not be greater than high")
)

// AddRequest is the body of a request to add items
type AddRequest struct {
	Items []string `json:"items"`
}

// ItemRequest is the body of the requests that operate
// on a single item
type ItemRequest struct {
	Item string `json:"item"`
}

// RangeRequest is the body of a request for the items
// between Low and High, both inclusive
type RangeRequest struct {
	Low  string `json:"low"`
	High string `json:"high"`
}

// ItemResponse is the response of the requests that look up
// a single item. Item is only meaningful when Found is true
type ItemResponse struct {
	Item  string `json:"item"`
	Found bool   `json:"found"`
}

// ItemsResponse holds a sequence of items
type ItemsResponse struct {
	Items []string `json:"items"`
	Count int      `json:"count"`
}

// HeightResponse holds the height of the tree
type HeightResponse struct {
	Height int `json:"height"`
}

// Service exposes the operations of a tree of strings
type Service struct {
	tree   *tree.Synced[string]
	logger logs.Logger
}

// Props are the properties required to create a Service
type Props struct {
	Tree   *tree.Synced[string]
	Logger logs.Logger
}

// New creates a new Service. It panics if any of the
// properties is missing
func New(props Props) *Service {
	if props.Tree == nil {
		panic("tree must be set")
	}

	if props.Logger == nil {
		panic("logger must be set")
	}

	return &Service{
		tree:   props.Tree,
		logger: props.Logger.ForClass("service", "Service"),
	}
}

func newItems(items []string) *ItemsResponse {
	if items == nil {
		items = []string{}
	}

	return &ItemsResponse{Items: items, Count: len(items)}
}

// Add adds all the items of the request and returns the
// resulting stats of the tree
func (s *Service) Add(ctx context.Context, req *AddRequest) (*tree.Stats, error) {
	if len(req.Items) == 0 {
		return nil, rpcs.BadRequest(ErrItemsMissing)
	}

	if lo.Contains(req.Items, "") {
		return nil, rpcs.BadRequest(ErrItemEmpty)
	}

	stats := s.tree.AddAll(req.Items...)
	s.logger.Debug(ctx, "items added", logs.MapFields{
		"count": len(req.Items),
		"len":   stats.Len,
	})
	return &stats, nil
}

// Remove removes one occurrence of the item
func (s *Service) Remove(ctx context.Context, req *ItemRequest) (*ItemResponse, error) {
	item, err := s.tree.Remove(req.Item)
	if err != nil {
		return nil, s.treeError(ctx, err)
	}

	s.logger.Debug(ctx, "item removed", logs.MapFields{"item": item})
	return &ItemResponse{Item: item, Found: true}, nil
}

// Find looks up the item
func (s *Service) Find(ctx context.Context, req *ItemRequest) (*ItemResponse, error) {
	item, ok := s.tree.Find(req.Item)
	return &ItemResponse{Item: item, Found: ok}, nil
}

// Successor returns the smallest item greater than the item
// of the request
func (s *Service) Successor(ctx context.Context, req *ItemRequest) (*ItemResponse, error) {
	item, ok := s.tree.Successor(req.Item)
	return &ItemResponse{Item: item, Found: ok}, nil
}

// Predecessor returns the greatest item less than the item
// of the request
func (s *Service) Predecessor(ctx context.Context, req *ItemRequest) (*ItemResponse, error) {
	item, ok := s.tree.Predecessor(req.Item)
	return &ItemResponse{Item: item, Found: ok}, nil
}

// Range returns the items within the bounds of the request in order
func (s *Service) Range(ctx context.Context, req *RangeRequest) (*ItemsResponse, error) {
	if req.Low > req.High {
		return nil, rpcs.BadRequest(ErrRangeInvalid)
	}

	return newItems(s.tree.RangeFind(req.Low, req.High)), nil
}

// Rebalance rebuilds the tree with minimum height
func (s *Service) Rebalance(ctx context.Context) (*tree.Stats, error) {
	before := s.tree.Stats()
	s.tree.Rebalance()
	after := s.tree.Stats()

	s.logger.Info(ctx, "tree rebalanced", logs.MapFields{
		"len":           after.Len,
		"height_before": before.Height,
		"height_after":  after.Height,
	})
	return &after, nil
}

// Height returns the height of the tree
func (s *Service) Height(ctx context.Context) (*HeightResponse, error) {
	h, err := s.tree.Height()
	if err != nil {
		return nil, s.treeError(ctx, err)
	}

	return &HeightResponse{Height: h}, nil
}

// Stats returns the stats of the tree
func (s *Service) Stats(ctx context.Context) (*tree.Stats, error) {
	stats := s.tree.Stats()
	return &stats, nil
}

// Traversal returns a handler for one of the traversal orders
// of the tree
func (s *Service) Traversal(walk func() []string) rpcs.Handler {
	return rpcs.HandlerFunc(func(ctx context.Context, v interface{}) (interface{}, error) {
		return newItems(walk()), nil
	})
}

func (s *Service) treeError(ctx context.Context, err error) error {
	e := errs.FromTree(err)
	if e == nil {
		return errors.Wrap(err, "unexpected tree failure")
	}

	s.logger.Debug(ctx, "tree operation failed", e)
	switch e.ErrorCode {
	case errs.ErrCodeKeyNotPresent:
		return rpcs.NotFound(e)
	case errs.ErrCodeEmptyTree:
		return rpcs.Conflict(e)
	default:
		return rpcs.InternalError(e)
	}
}

// Bind binds the operations of the service to the binder
func (s *Service) Bind(binder *rpcs.Binder) {
	binder.Bind(http.MethodPost, "/add", rpcs.HandlerFunc(func(ctx context.Context, v interface{}) (interface{}, error) {
		return s.Add(ctx, v.(*AddRequest))
	}), rpcs.EntityFactoryFunc(func() interface{} { return &AddRequest{} }))

	items := map[string]func(context.Context, *ItemRequest) (*ItemResponse, error){
		"/remove":      s.Remove,
		"/find":        s.Find,
		"/successor":   s.Successor,
		"/predecessor": s.Predecessor,
	}
	for uri, fn := range items {
		fn := fn
		binder.Bind(http.MethodPost, uri, rpcs.HandlerFunc(func(ctx context.Context, v interface{}) (interface{}, error) {
			return fn(ctx, v.(*ItemRequest))
		}), rpcs.EntityFactoryFunc(func() interface{} { return &ItemRequest{} }))
	}

	binder.Bind(http.MethodPost, "/range", rpcs.HandlerFunc(func(ctx context.Context, v interface{}) (interface{}, error) {
		return s.Range(ctx, v.(*RangeRequest))
	}), rpcs.EntityFactoryFunc(func() interface{} { return &RangeRequest{} }))

	binder.Bind(http.MethodPost, "/rebalance", rpcs.HandlerFunc(func(ctx context.Context, v interface{}) (interface{}, error) {
		return s.Rebalance(ctx)
	}), rpcs.NoBodyFactory)
	binder.Bind(http.MethodGet, "/height", rpcs.HandlerFunc(func(ctx context.Context, v interface{}) (interface{}, error) {
		return s.Height(ctx)
	}), rpcs.NoBodyFactory)
	binder.Bind(http.MethodGet, "/stats", rpcs.HandlerFunc(func(ctx context.Context, v interface{}) (interface{}, error) {
		return s.Stats(ctx)
	}), rpcs.NoBodyFactory)

	binder.Bind(http.MethodGet, "/preorder", s.Traversal(s.tree.PreOrder), rpcs.NoBodyFactory)
	binder.Bind(http.MethodGet, "/inorder", s.Traversal(s.tree.InOrder), rpcs.NoBodyFactory)
	binder.Bind(http.MethodGet, "/postorder", s.Traversal(s.tree.PostOrder), rpcs.NoBodyFactory)
	binder.Bind(http.MethodGet, "/levelorder", s.Traversal(s.tree.LevelOrder), rpcs.NoBodyFactory)
}
