package session_repo

import (
	"jackpot_backend/internal/model"
	"jackpot_backend/internal/repository"
	"sync"
)

// Реализация реестра сессий в памяти процесса.
// Сессии не переживают рестарт и не разделяются между инстансами
type SessionRepo struct {
	mtx      sync.RWMutex
	sessions map[string]model.Session
}

func NewSessionRepository() repository.SessionRepository {
	return &SessionRepo{
		sessions: make(map[string]model.Session),
	}
}

// CreateSession - сохраняет сессию по токену.
// При коллизии токенов старая сессия перезаписывается
func (r *SessionRepo) CreateSession(token string, session model.Session) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.sessions[token] = session
}

// GetSession - возвращает сессию по токену
func (r *SessionRepo) GetSession(token string) (model.Session, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	session, ok := r.sessions[token]
	return session, ok
}

// DeleteSession - удаляет сессию. Повторное удаление не ошибка
func (r *SessionRepo) DeleteSession(token string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	delete(r.sessions, token)
}
