package common

import "os"

const serviceName = "planboard"

var serviceInstance string

func init() {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	serviceInstance = hostname
}

func GetServiceName() string {
	return serviceName
}

func GetServiceInstance() string {
	return serviceInstance
}
