package observer

import "sync"

// WeatherBoard publishes temperature readings.
type WeatherBoard struct {
	*Subject[*WeatherBoard]

	mu   sync.RWMutex
	temp float64
}

// NewWeatherBoard creates a board with its own, empty observer set.
func NewWeatherBoard() *WeatherBoard {
	return &WeatherBoard{Subject: NewSubject[*WeatherBoard]()}
}

// SetTemperature records a reading and notifies every observer.
func (b *WeatherBoard) SetTemperature(t float64) {
	b.mu.Lock()
	b.temp = t
	b.mu.Unlock()

	b.Notify(b, nil)
}

// Temperature returns the latest reading.
func (b *WeatherBoard) Temperature() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.temp
}

// Client mirrors the last temperature it was told about.
type Client struct {
	mu   sync.RWMutex
	temp float64
}

// NewClient creates a client with a zero reading.
func NewClient() *Client {
	return &Client{}
}

// Update implements Observer.
func (c *Client) Update(board *WeatherBoard) {
	t := board.Temperature()
	c.mu.Lock()
	c.temp = t
	c.mu.Unlock()
}

// Temperature returns the last reading received.
func (c *Client) Temperature() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.temp
}
