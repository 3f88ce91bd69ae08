package httpapi

import (
	"net/http"

	"skillbridge-engine/internal/config"
)

// NewMux wires every route. Protected routes sit behind RequireAuth; the
// caller wraps the whole mux with the outer middleware chain.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()
	authed := RequireAuth(d.Tokens)

	// Auth
	ah := AuthHandler{Users: d.Users, Tokens: d.Tokens, Hub: d.Hub, Log: d.Log}
	mux.HandleFunc("/auth/register", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Register,
	}))
	mux.HandleFunc("/auth/login", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Login,
	}))

	// Users
	uh := UsersHandler{Users: d.Users}
	mux.Handle("/users/me", authed(methodMux(map[string]http.HandlerFunc{
		http.MethodGet: uh.Me,
	})))
	mux.HandleFunc("/mentors", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: uh.Mentors,
	}))

	// Recommendations
	cfg := d.CfgVal.Load().(config.Config)
	rh := RecommendHandler{Engine: d.Engine, Hub: d.Hub, Log: d.Log, DefaultLimit: cfg.Recommend.DefaultLimit}
	mux.Handle("/recommendations/mentors", authed(methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.List,
	})))
	mux.Handle("/recommendations/mentors/", authed(methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.Detail, // expects /recommendations/mentors/{id}
	})))
	mux.HandleFunc("/recommendations/skills/popular", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.PopularSkills,
	}))
	mux.Handle("/recommendations/stats", authed(methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.Stats,
	})))

	// Sessions
	sh := SessionsHandler{Users: d.Users, Sessions: d.Sessions, Hub: d.Hub}
	mux.Handle("/sessions/book", authed(methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.Book,
	})))
	mux.Handle("/sessions/me", authed(methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.Mine,
	})))

	// Config
	ch := ConfigHandler{CfgVal: d.CfgVal, UserCfgPath: d.UserCfgPath, LoadCfg: d.LoadCfg}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	// Seed (local development)
	if d.SeedUsers != nil {
		mux.HandleFunc("/seed", methodMux(map[string]http.HandlerFunc{
			http.MethodPost: func(w http.ResponseWriter, r *http.Request) {
				added, err := d.SeedUsers()
				if err != nil {
					WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
					return
				}
				writeJSON(w, SeedResponse{Added: added})
			},
		}))
	}

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	// Health
	hh := HealthHandler{}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	return mux
}
