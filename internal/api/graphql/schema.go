// Package graphql exposes the same operations as the REST handlers through a
// single GraphQL endpoint: register, login and checkout mutations plus users
// and products queries. Resolvers delegate to the core services; the caller
// identity reaches the checkout resolver through the request context.
package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/lojinha/commerce-system/internal/api/metrics"
	"github.com/lojinha/commerce-system/internal/api/middleware"
	"github.com/lojinha/commerce-system/internal/core/domain"
	"github.com/lojinha/commerce-system/internal/core/ports"
)

// authPayload is the login mutation result.
type authPayload struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// NewSchema builds the schema over the same services the REST adapter uses.
func NewSchema(auth ports.AuthService, checkout ports.CheckoutService, catalog ports.ProductCatalog) (graphql.Schema, error) {
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":    &graphql.Field{Type: graphql.Int},
			"name":  &graphql.Field{Type: graphql.String},
			"email": &graphql.Field{Type: graphql.String},
		},
	})

	productType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id":   &graphql.Field{Type: graphql.Int},
			"name": &graphql.Field{Type: graphql.String},
			"price": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					product, ok := p.Source.(domain.Product)
					if !ok {
						return nil, nil
					}
					return product.Price.InexactFloat64(), nil
				},
			},
		},
	})

	authPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"token": &graphql.Field{Type: graphql.String},
			"user":  &graphql.Field{Type: userType},
		},
	})

	checkoutItemType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CheckoutItem",
		Fields: graphql.Fields{
			"productId": &graphql.Field{Type: graphql.Int},
			"quantity":  &graphql.Field{Type: graphql.Int},
		},
	})

	checkoutResultType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CheckoutResult",
		Fields: graphql.Fields{
			"userId":        &graphql.Field{Type: graphql.Int},
			"items":         &graphql.Field{Type: graphql.NewList(checkoutItemType)},
			"paymentMethod": &graphql.Field{Type: graphql.String},
			"freight": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					result, ok := p.Source.(*domain.CheckoutResult)
					if !ok {
						return nil, nil
					}
					return result.Freight.InexactFloat64(), nil
				},
			},
			"total": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					result, ok := p.Source.(*domain.CheckoutResult)
					if !ok {
						return nil, nil
					}
					return result.Total.InexactFloat64(), nil
				},
			},
		},
	})

	checkoutItemInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CheckoutItemInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"productId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"quantity":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	cardDataInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CardDataInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"number": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"holder": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"expiry": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"cvv":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"users": &graphql.Field{
				Type: graphql.NewList(userType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return auth.ListUsers(p.Context)
				},
			},
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return catalog.All(p.Context)
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"register": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := auth.Register(p.Context,
						stringArg(p.Args, "name"),
						stringArg(p.Args, "email"),
						stringArg(p.Args, "password"),
					)
					if err != nil {
						return nil, err
					}
					metrics.UsersRegisteredTotal.WithLabelValues(metrics.TransportGraphQL).Inc()
					return user, nil
				},
			},
			"login": &graphql.Field{
				Type: authPayloadType,
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					token, user, err := auth.Login(p.Context,
						stringArg(p.Args, "email"),
						stringArg(p.Args, "password"),
					)
					if err != nil {
						metrics.LoginsTotal.WithLabelValues(metrics.TransportGraphQL, "failed").Inc()
						return nil, err
					}
					metrics.LoginsTotal.WithLabelValues(metrics.TransportGraphQL, "ok").Inc()
					return authPayload{Token: token, User: user}, nil
				},
			},
			"checkout": &graphql.Field{
				Type: checkoutResultType,
				Args: graphql.FieldConfigArgument{
					"items":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(checkoutItemInput)))},
					"freight":       &graphql.ArgumentConfig{Type: graphql.Float, DefaultValue: 0.0},
					"paymentMethod": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"cardData":      &graphql.ArgumentConfig{Type: cardDataInput},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					ident, ok := middleware.IdentityFrom(p.Context)
					if !ok {
						metrics.CheckoutErrorsTotal.WithLabelValues(metrics.TransportGraphQL, "unauthorized").Inc()
						return nil, domain.ErrUnauthorized
					}

					input := ports.CheckoutInput{
						UserID:        ident.UserID,
						Items:         itemsArg(p.Args["items"]),
						Freight:       floatArg(p.Args, "freight"),
						PaymentMethod: stringArg(p.Args, "paymentMethod"),
						CardData:      cardDataArg(p.Args["cardData"]),
					}

					result, err := checkout.Checkout(p.Context, input)
					if err != nil {
						switch err {
						case domain.ErrProductNotFound:
							metrics.CheckoutErrorsTotal.WithLabelValues(metrics.TransportGraphQL, "product_not_found").Inc()
						case domain.ErrCardDataRequired:
							metrics.CheckoutErrorsTotal.WithLabelValues(metrics.TransportGraphQL, "card_data_required").Inc()
						}
						return nil, err
					}

					metrics.CheckoutsTotal.WithLabelValues(metrics.TransportGraphQL, result.PaymentMethod).Inc()
					metrics.CheckoutAmountBRL.WithLabelValues(result.PaymentMethod).Observe(result.Total.InexactFloat64())
					return result, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

// --- Argument coercion helpers ---

func stringArg(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}

func floatArg(args map[string]interface{}, key string) float64 {
	switch v := args[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func intValue(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

func itemsArg(arg interface{}) []domain.CheckoutItem {
	raw, ok := arg.([]interface{})
	if !ok {
		return nil
	}

	items := make([]domain.CheckoutItem, 0, len(raw))
	for _, e := range raw {
		m, ok := e.(map[string]interface{})
		if !ok {
			continue
		}
		items = append(items, domain.CheckoutItem{
			ProductID: intValue(m, "productId"),
			Quantity:  intValue(m, "quantity"),
		})
	}
	return items
}

func cardDataArg(arg interface{}) *domain.CardData {
	m, ok := arg.(map[string]interface{})
	if !ok {
		return nil
	}

	card := &domain.CardData{}
	card.Number, _ = m["number"].(string)
	card.Holder, _ = m["holder"].(string)
	card.Expiry, _ = m["expiry"].(string)
	card.CVV, _ = m["cvv"].(string)
	return card
}
