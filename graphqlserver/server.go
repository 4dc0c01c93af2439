package graphqlserver

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"gorm.io/gorm"

	"warehouse.GO/graphql"
	gqlmodels "warehouse.GO/graphql/models"
	"warehouse.GO/model/entity"
	actionlogRepo "warehouse.GO/model/repository/actionlog"
	cargoRepo "warehouse.GO/model/repository/cargo"
	categoryRepo "warehouse.GO/model/repository/category"
	shipmentRepo "warehouse.GO/model/repository/shipment"
	stockRepo "warehouse.GO/model/repository/stock"
)

// RootResolver is the root for graphql-go. The read-only query surface
// mirrors the REST API; mutations stay on REST.
type RootResolver struct {
	DB *gorm.DB
}

// Query returns the query resolver.
func (r *RootResolver) Query() *QueryResolver {
	return &QueryResolver{db: r.DB}
}

// QueryResolver implements Query fields on top of the repositories.
type QueryResolver struct {
	db *gorm.DB
}

// StockArgs matches the stock query arguments.
type StockArgs struct {
	Article gql.ID
}

func (r *QueryResolver) Stock(ctx context.Context, args StockArgs) (*gqlmodels.Stock, error) {
	article, err := parseUintID(args.Article)
	if err != nil {
		return nil, fmt.Errorf("invalid article %q", args.Article)
	}
	repo, err := stockRepo.NewStockRepository(r.db)
	if err != nil {
		return nil, err
	}
	st, err := repo.FindByArticle(article)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return stockModel(st), nil
}

// StocksArgs matches the stocks query arguments (defaults in schema:
// pageSize=20, currentPage=1).
type StocksArgs struct {
	CategoryID  *gql.ID
	PageSize    int32
	CurrentPage int32
}

func (r *QueryResolver) Stocks(ctx context.Context, args StocksArgs) (*gqlmodels.StockList, error) {
	repo, err := stockRepo.NewStockRepository(r.db)
	if err != nil {
		return nil, err
	}
	ps, cp := int(args.PageSize), int(args.CurrentPage)
	if ps <= 0 {
		ps = 20
	}
	if cp <= 0 {
		cp = 1
	}

	var items []entity.Stock
	var total int64
	if args.CategoryID != nil {
		catID, err := parseUintID(*args.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category id %q", *args.CategoryID)
		}
		ids, err := categoryRepo.NewCategoryRepository(r.db).DescendantIDs(catID)
		if err != nil {
			return nil, err
		}
		all, err := repo.ListByCategoryIDs(ids)
		if err != nil {
			return nil, err
		}
		total = int64(len(all))
		// Paginate the in-memory subtree result.
		from := (cp - 1) * ps
		if from > len(all) {
			from = len(all)
		}
		to := from + ps
		if to > len(all) {
			to = len(all)
		}
		items = all[from:to]
	} else {
		if err := r.db.Model(&entity.Stock{}).Count(&total).Error; err != nil {
			return nil, err
		}
		items, err = repo.List(cp, ps)
		if err != nil {
			return nil, err
		}
	}

	out := make([]*gqlmodels.Stock, 0, len(items))
	for i := range items {
		out = append(out, stockModel(&items[i]))
	}
	totalPages := int32((total + int64(ps) - 1) / int64(ps))
	return &gqlmodels.StockList{
		Items:      out,
		TotalCount: int32(total),
		PageInfo: &gqlmodels.PageInfo{
			PageSize:    int32(ps),
			CurrentPage: int32(cp),
			TotalPages:  totalPages,
		},
	}, nil
}

func (r *QueryResolver) Categories(ctx context.Context) ([]*gqlmodels.Category, error) {
	cats, err := categoryRepo.NewCategoryRepository(r.db).FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]*gqlmodels.Category, 0, len(cats))
	for i := range cats {
		out = append(out, categoryModel(&cats[i], nil))
	}
	return out, nil
}

func (r *QueryResolver) CategoryTree(ctx context.Context) ([]*gqlmodels.Category, error) {
	cats, err := categoryRepo.NewCategoryRepository(r.db).FindAll()
	if err != nil {
		return nil, err
	}
	nodes := make(map[uint]*gqlmodels.Category, len(cats))
	for i := range cats {
		nodes[cats[i].ID] = categoryModel(&cats[i], &[]*gqlmodels.Category{})
	}
	var roots []*gqlmodels.Category
	for i := range cats {
		n := nodes[cats[i].ID]
		if cats[i].ParentID != nil {
			if p, ok := nodes[*cats[i].ParentID]; ok {
				*p.Children = append(*p.Children, n)
				continue
			}
		}
		roots = append(roots, n)
	}
	return roots, nil
}

// ShipmentArgs matches the shipment query arguments.
type ShipmentArgs struct {
	ID gql.ID
}

func (r *QueryResolver) Shipment(ctx context.Context, args ShipmentArgs) (*gqlmodels.Shipment, error) {
	id, err := parseUintID(args.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid shipment id %q", args.ID)
	}
	repo, err := shipmentRepo.NewShipmentRepository(r.db)
	if err != nil {
		return nil, err
	}
	sh, err := repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	total, err := repo.Total(id)
	if err != nil {
		return nil, err
	}
	customer := ""
	if sh.Customer != nil {
		customer = sh.Customer.FullName
	}
	lines := make([]*gqlmodels.Line, 0, len(sh.Lines))
	for _, l := range sh.Lines {
		lines = append(lines, lineModel(l.StockArticle, l.Stock, l.Quantity))
	}
	return &gqlmodels.Shipment{
		ID:        uintID(sh.ID),
		Status:    string(sh.Status),
		Customer:  customer,
		CreatedAt: sh.CreatedAt.Format(time.RFC3339),
		Notified:  sh.NotifiedAt != nil,
		Lines:     lines,
		Total:     total,
	}, nil
}

// CargoArgs matches the cargo query arguments.
type CargoArgs struct {
	ID gql.ID
}

func (r *QueryResolver) Cargo(ctx context.Context, args CargoArgs) (*gqlmodels.Cargo, error) {
	id, err := parseUintID(args.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid cargo id %q", args.ID)
	}
	repo, err := cargoRepo.NewCargoRepository(r.db)
	if err != nil {
		return nil, err
	}
	cg, err := repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	total, err := repo.Total(id)
	if err != nil {
		return nil, err
	}
	supplier := ""
	if cg.Supplier != nil {
		supplier = cg.Supplier.Organization
	}
	lines := make([]*gqlmodels.Line, 0, len(cg.Lines))
	for _, l := range cg.Lines {
		lines = append(lines, lineModel(l.StockArticle, l.Stock, l.Quantity))
	}
	return &gqlmodels.Cargo{
		ID:        uintID(cg.ID),
		Status:    string(cg.Status),
		Supplier:  supplier,
		CreatedAt: cg.CreatedAt.Format(time.RFC3339),
		Lines:     lines,
		Total:     total,
	}, nil
}

// ActionLogArgs matches the actionLog query arguments.
type ActionLogArgs struct {
	PageSize    int32
	CurrentPage int32
}

func (r *QueryResolver) ActionLog(ctx context.Context, args ActionLogArgs) ([]*gqlmodels.ActionLogEntry, error) {
	ps, cp := int(args.PageSize), int(args.CurrentPage)
	entries, err := actionlogRepo.NewActionLogRepository(r.db).List(cp, ps)
	if err != nil {
		return nil, err
	}
	out := make([]*gqlmodels.ActionLogEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, &gqlmodels.ActionLogEntry{
			ID:        uintID(e.ID),
			Entity:    e.Entity,
			Snapshot:  e.Snapshot,
			Action:    string(e.Action),
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

func stockModel(st *entity.Stock) *gqlmodels.Stock {
	m := &gqlmodels.Stock{
		Article:  uintID(st.Article),
		Name:     st.Name,
		Price:    st.Price.StringFixed(2),
		Quantity: int32(st.Quantity),
	}
	if st.CategoryID != nil {
		id := uintID(*st.CategoryID)
		m.CategoryID = &id
	}
	return m
}

func categoryModel(c *entity.Category, children *[]*gqlmodels.Category) *gqlmodels.Category {
	m := &gqlmodels.Category{
		ID:       uintID(c.ID),
		Name:     c.Name,
		Children: children,
	}
	if c.ParentID != nil {
		id := uintID(*c.ParentID)
		m.ParentID = &id
	}
	return m
}

func lineModel(article uint, st *entity.Stock, qty int) *gqlmodels.Line {
	name := ""
	if st != nil {
		name = st.Name
	}
	return &gqlmodels.Line{
		Article:  uintID(article),
		Name:     name,
		Quantity: int32(qty),
	}
}

func uintID(id uint) gql.ID {
	return gql.ID(strconv.FormatUint(uint64(id), 10))
}

func parseUintID(id gql.ID) (uint, error) {
	v, err := strconv.ParseUint(string(id), 10, 32)
	return uint(v), err
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(db *gorm.DB) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{DB: db}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
