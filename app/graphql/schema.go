// Package graphql exposes the service's operation surface: the health and
// me queries and the register and login mutations. The schema is built at
// startup from typed resolver functions; arguments are parsed into domain
// input structs once at entry.
package graphql

import (
	"log/slog"

	"github.com/graphql-go/graphql"

	"auth-graph/app/domain"
	"auth-graph/app/port"
)

// Resolver holds the usecases the schema resolves against
type Resolver struct {
	auth   port.AuthUsecase
	users  port.UserUsecase
	logger *slog.Logger
}

// NewResolver creates a new Resolver instance
func NewResolver(auth port.AuthUsecase, users port.UserUsecase, logger *slog.Logger) *Resolver {
	return &Resolver{
		auth:   auth,
		users:  users,
		logger: logger.With("component", "graphql"),
	}
}

// NewSchema builds the executable schema:
//
//	type Query    { health: String!, me: User }
//	type Mutation { register(name, email, password): AuthPayload!
//	                login(email, password): AuthPayload! }
func NewSchema(r *Resolver) (graphql.Schema, error) {
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	authPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"user":  &graphql.Field{Type: graphql.NewNonNull(userType)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"health": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.String),
				Resolve: r.resolveHealth,
			},
			"me": &graphql.Field{
				Type:    userType,
				Resolve: r.resolveMe,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"register": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveRegister,
			},
			"login": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveLogin,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

func (r *Resolver) resolveHealth(p graphql.ResolveParams) (interface{}, error) {
	return "ok", nil
}

func (r *Resolver) resolveMe(p graphql.ResolveParams) (interface{}, error) {
	user, err := r.users.CurrentUser(p.Context)
	if err != nil {
		r.logger.Error("me query failed", "error", err)
		return nil, r.presentError(err)
	}
	if user == nil {
		// Anonymous or since-deleted user: null, never an error.
		return nil, nil
	}
	return user, nil
}

func (r *Resolver) resolveRegister(p graphql.ResolveParams) (interface{}, error) {
	input := domain.RegisterInput{
		Name:     argString(p, "name"),
		Email:    argString(p, "email"),
		Password: argString(p, "password"),
	}

	payload, err := r.auth.Register(p.Context, input)
	if err != nil {
		return nil, r.presentError(err)
	}
	return payload, nil
}

func (r *Resolver) resolveLogin(p graphql.ResolveParams) (interface{}, error) {
	input := domain.LoginInput{
		Email:    argString(p, "email"),
		Password: argString(p, "password"),
	}

	payload, err := r.auth.Login(p.Context, input)
	if err != nil {
		return nil, r.presentError(err)
	}
	return payload, nil
}

// argString extracts a string argument. The schema declares these non-null,
// so a missing value never reaches the resolver; the empty-string fallback
// only guards direct resolver calls in tests.
func argString(p graphql.ResolveParams, name string) string {
	value, _ := p.Args[name].(string)
	return value
}
