// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scm

import (
	"encoding/json"
	"net/http"

	"github.com/conectabrasil/soroban-connector/internal/metrics"
	"github.com/conectabrasil/soroban-connector/internal/scconfig"
	"github.com/ghodss/yaml"
	"github.com/gorilla/mux"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffapi"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (m *manager) handlerFactory() *ffapi.HandlerFactory {
	return &ffapi.HandlerFactory{
		DefaultRequestTimeout: config.GetDuration(scconfig.APIDefaultRequestTimeout),
		MaxTimeout:            config.GetDuration(scconfig.APIMaxRequestTimeout),
	}
}

func (m *manager) router() *mux.Router {
	mux := mux.NewRouter()
	if m.metricsEnabled {
		mux.Use(metrics.GetAPIServerInstrumentation().Middleware)
	}
	hf := m.handlerFactory()
	routes := m.routes()
	for _, r := range routes {
		mux.Path(r.Path).Methods(r.Method).Handler(hf.RouteHandler(r))
	}
	mux.Path("/api").Methods(http.MethodGet).Handler(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		url := req.URL.String() + "/spec.yaml"
		handler := hf.APIWrapper(swaggerUIHandler(url))
		handler(res, req)
	}))
	mux.Path("/api/spec.yaml").Methods(http.MethodGet).Handler(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		doc := m.swaggerGen(req).Generate(req.Context(), routes)
		res.Header().Add("Content-Type", "application/x-yaml")
		b, _ := yaml.Marshal(&doc)
		_, _ = res.Write(b)
	}))
	mux.Path("/api/spec.json").Methods(http.MethodGet).Handler(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		doc := m.swaggerGen(req).Generate(req.Context(), routes)
		res.Header().Add("Content-Type", "application/json")
		b, _ := json.Marshal(&doc)
		_, _ = res.Write(b)
	}))

	mux.NotFoundHandler = hf.APIWrapper(func(res http.ResponseWriter, req *http.Request) (status int, err error) {
		return 404, i18n.NewError(req.Context(), i18n.Msg404NotFound)
	})
	return mux
}

func swaggerUIHandler(url string) ffapi.HandlerFunction {
	return func(res http.ResponseWriter, req *http.Request) (status int, err error) {
		res.Header().Add("Content-Type", "text/html")
		_, _ = res.Write(ffapi.SwaggerUIHTML(url))
		return http.StatusOK, nil
	}
}

func (m *manager) swaggerGen(req *http.Request) *ffapi.SwaggerGen {
	u := *req.URL
	u.Path = ""
	return ffapi.NewSwaggerGen(&ffapi.SwaggerGenOptions{
		Title:   "Soroban Contract Connector",
		Version: "1.0",
		BaseURL: u.String(),
	})
}

func (m *manager) createMetricsMuxRouter() *mux.Router {
	r := mux.NewRouter()
	r.Path(config.GetString(scconfig.MetricsPath)).Handler(promhttp.InstrumentMetricHandler(metrics.Registry(),
		promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})))

	hf := m.handlerFactory()
	for _, route := range m.monitoringRoutes() {
		r.Path(route.Path).Methods(route.Method).Handler(hf.RouteHandler(route))
	}
	return r
}

func (m *manager) runAPIServer() {
	m.apiServer.ServeHTTP(m.ctx)
}

func (m *manager) runMetricsServer() {
	m.metricsServer.ServeHTTP(m.ctx)
}
