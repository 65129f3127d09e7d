package sessionstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
)

const keyPrefix = "wa:session:"

// Store хранилище WhatsApp-сессий в Redis.
// Каждая сессия живет под ключом wa:session:<phone> со скользящим TTL:
// любое сообщение от клиента продлевает диалог.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает хранилище сессий с указанным временем жизни
func New(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Get возвращает сессию для номера телефона.
// Если сессии нет (или она истекла), возвращается свежая idle-сессия:
// вызывающему коду не нужно различать эти случаи.
func (s *Store) Get(ctx context.Context, phone string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, keyPrefix+phone).Bytes()
	if err == redis.Nil {
		return domain.NewSession(phone), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: phone=%s: %v", ErrGet, phone, err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		// битую сессию считаем отсутствующей, диалог начнется заново
		return domain.NewSession(phone), nil
	}
	return &session, nil
}

// Set сохраняет сессию и сбрасывает её TTL
func (s *Store) Set(ctx context.Context, session *domain.Session) error {
	session.UpdatedAt = time.Now()

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: phone=%s: marshal: %v", ErrSet, session.Phone, err)
	}

	if err := s.client.Set(ctx, keyPrefix+session.Phone, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: phone=%s: %v", ErrSet, session.Phone, err)
	}
	return nil
}

// Delete удаляет сессию (диалог завершен или сброшен)
func (s *Store) Delete(ctx context.Context, phone string) error {
	if err := s.client.Del(ctx, keyPrefix+phone).Err(); err != nil {
		return fmt.Errorf("%w: phone=%s: %v", ErrDelete, phone, err)
	}
	return nil
}
