package cache

import (
	"fmt"

	"github.com/gomodule/redigo/redis"
)

func Get(key string, conn redis.Conn) (string, error) {
	data, err := redis.String(conn.Do("GET", key))
	if err != nil {
		return "", fmt.Errorf("redis GET %s: %w", key, err)
	}
	return data, nil
}

func Set(key string, value interface{}, conn redis.Conn) error {
	reply, err := redis.String(conn.Do("SET", key, value))
	if err != nil {
		return fmt.Errorf("redis SET %s: %w", key, err)
	}
	if reply != "OK" {
		return fmt.Errorf("redis SET %s: unexpected reply %q", key, reply)
	}
	return nil
}

func Del(key string, conn redis.Conn) error {
	_, err := conn.Do("DEL", key)
	if err != nil {
		return fmt.Errorf("redis DEL %s: %w", key, err)
	}
	return nil
}
