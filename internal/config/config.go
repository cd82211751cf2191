package config

import "net"

type Config interface {
	Host() string
	Port() string
	Address() string

	ReadBufferSize() int
	DrainBufferSize() int
}

func MustLoad() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) Host() string         { return c.host }
func (c *config) Port() string         { return c.port }
func (c *config) Address() string      { return net.JoinHostPort(c.host, c.port) }
func (c *config) ReadBufferSize() int  { return c.readBufferSize }
func (c *config) DrainBufferSize() int { return c.drainBufferSize }
