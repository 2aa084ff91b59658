// Copyright 2024 the Chirp authors
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

package metrics

import (
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter metric.Meter

func LabelsForShard(shard int32) map[string]any {
	return map[string]any{
		"shard": shard,
	}
}

func fatalOnErr(err error, name string) {
	if err != nil {
		slog.Error(
			"Failed to create metric",
			slog.String("metric-name", name),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}

func getAttrs(labels map[string]any) attribute.Set {
	attrs := make([]attribute.KeyValue, 0, len(labels))
	for k, v := range labels {
		key := attribute.Key(k)
		switch t := v.(type) {
		case int32:
			attrs = append(attrs, key.Int64(int64(t)))
		case int64:
			attrs = append(attrs, key.Int64(t))
		case int:
			attrs = append(attrs, key.Int(t))
		case float64:
			attrs = append(attrs, key.Float64(t))
		case bool:
			attrs = append(attrs, key.Bool(t))
		case string:
			attrs = append(attrs, key.String(t))
		default:
			slog.Error("Invalid label type", slog.Any("value", v))
			os.Exit(1)
		}
	}

	return attribute.NewSet(attrs...)
}

func init() {
	meter = otel.Meter("chirp")
}
