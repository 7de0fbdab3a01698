package usecase

import (
	"sync"

	"github.com/brianvoe/gofakeit/v7"
)

// AccessSource supplies client details for access logs recorded without a real request.
type AccessSource interface {
	IP() string
	DeviceSignature() string
}

// deviceSignatures are mobile user agents used for simulated downloads.
var deviceSignatures = []string{
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/17C54 Safari/605.1.15",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 16_7_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.7.2 Mobile/15G77 Safari/605.1.15",
	"Mozilla/5.0 (Linux; Android 14; Pixel 8 Pro) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/130.0.0.0 Mobile Safari/537.36",
	"Mozilla/5.0 (Linux; Android 13; Pixel 7a Build/TQ3A.230705.001) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/129.0.0.0 Mobile Safari/537.36",
	"Mozilla/5.0 (Linux; Android 13; SM-S918B) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/129.0.6668.101 Mobile Safari/537.36",
	"Mozilla/5.0 (Linux; Android 14; SM-F946B) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/130.0.6723.91 Mobile Safari/537.36",
	"Mozilla/5.0 (iPad; CPU OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Mobile/17B84 Safari/605.1.15",
	"Mozilla/5.0 (Linux; Android 13; OnePlus 11) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/128.0.0.0 Mobile Safari/537.36",
	"Mozilla/5.0 (Linux; Android 14; Xiaomi 14 Pro) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/130.0.0.0 Mobile Safari/537.36",
	"Mozilla/5.0 (Linux; HarmonyOS 3.1; HUAWEI P60 Pro) AppleWebKit/537.36 (KHTML, like Gecko) HuaweiBrowser/14.0.0 Mobile Safari/537.36",
}

// SimulatedAccess draws random IPv4 addresses and device signatures.
type SimulatedAccess struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
}

// NewSimulatedAccess returns a source seeded from crypto randomness.
func NewSimulatedAccess() *SimulatedAccess {
	return &SimulatedAccess{faker: gofakeit.New(0)}
}

func (s *SimulatedAccess) IP() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.faker.IPv4Address()
}

func (s *SimulatedAccess) DeviceSignature() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.faker.RandomString(deviceSignatures)
}
