package tracing

import (
	"io"
	"planboard/common"

	"github.com/sirupsen/logrus"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	jaegermetrics "github.com/uber/jaeger-lib/metrics"
)

// Bootstrap builds the global tracer from JAEGER_* environment variables.
// A nil closer means tracing stayed on the noop tracer.
func Bootstrap() io.Closer {
	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		logrus.Warnf("tracing disabled, invalid jaeger config: %v", err)
		return nil
	}
	cfg.ServiceName = common.GetServiceName()

	closer, err := cfg.InitGlobalTracer(cfg.ServiceName, jaegercfg.Metrics(jaegermetrics.NullFactory))
	if err != nil {
		logrus.Warnf("tracing disabled, jaeger tracer init failed: %v", err)
		return nil
	}
	return closer
}
