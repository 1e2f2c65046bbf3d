package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"ai-topiclist-be/internal/entity"
	"ai-topiclist-be/internal/pkg/logger"
	"ai-topiclist-be/internal/repository/contract"
	"ai-topiclist-be/internal/repository/specification"
	"ai-topiclist-be/internal/repository/unitofwork"
	"ai-topiclist-be/pkg/events"
	"ai-topiclist-be/pkg/llm"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// rowKeys is the subset of a row that specifications can filter on.
type rowKeys struct {
	id          uuid.UUID
	userId      uuid.UUID
	sessionId   uuid.UUID
	topicListId uuid.UUID
	sectionId   uuid.UUID
	email       string
}

func matches(row rowKeys, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if row.id != s.ID {
				return false
			}
		case specification.ExcludeID:
			if row.id == s.ID {
				return false
			}
		case specification.ByEmail:
			if row.email != s.Email {
				return false
			}
		case specification.UserOwnedBy:
			if row.userId != s.UserID {
				return false
			}
		case specification.BySessionID:
			if row.sessionId != s.SessionID {
				return false
			}
		case specification.ByTopicListID:
			if row.topicListId != s.TopicListID {
				return false
			}
		case specification.BySectionID:
			if row.sectionId != s.SectionID {
				return false
			}
		case specification.OrderBy:
		default:
			panic("fake store: unsupported specification")
		}
	}
	return true
}

type fakeDB struct {
	mu sync.Mutex

	users    map[uuid.UUID]entity.User
	sessions map[uuid.UUID]entity.ChatSession
	messages []entity.ChatMessage
	lists    map[uuid.UUID]entity.TopicList
	sections map[uuid.UUID]entity.Section
	topics   map[uuid.UUID]entity.Topic

	begins, commits, rollbacks int
	markCompletedCalls         int

	failTopicCreate error
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		users:    map[uuid.UUID]entity.User{},
		sessions: map[uuid.UUID]entity.ChatSession{},
		lists:    map[uuid.UUID]entity.TopicList{},
		sections: map[uuid.UUID]entity.Section{},
		topics:   map[uuid.UUID]entity.Topic{},
	}
}

type fakeFactory struct{ db *fakeDB }

func (f fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUoW{db: f.db}
}

type fakeUoW struct {
	db   *fakeDB
	inTx bool
}

func (u *fakeUoW) Begin(ctx context.Context) error {
	if u.inTx {
		return errors.New("transaction already started")
	}
	u.inTx = true
	u.db.mu.Lock()
	u.db.begins++
	u.db.mu.Unlock()
	return nil
}

func (u *fakeUoW) Commit() error {
	if !u.inTx {
		return errors.New("no transaction to commit")
	}
	u.inTx = false
	u.db.mu.Lock()
	u.db.commits++
	u.db.mu.Unlock()
	return nil
}

func (u *fakeUoW) Rollback() error {
	if !u.inTx {
		return errors.New("no transaction to rollback")
	}
	u.inTx = false
	u.db.mu.Lock()
	u.db.rollbacks++
	u.db.mu.Unlock()
	return nil
}

func (u *fakeUoW) UserRepository() contract.UserRepository               { return fakeUsers{u.db} }
func (u *fakeUoW) ChatSessionRepository() contract.ChatSessionRepository { return fakeSessions{u.db} }
func (u *fakeUoW) ChatMessageRepository() contract.ChatMessageRepository { return fakeMessages{u.db} }
func (u *fakeUoW) TopicListRepository() contract.TopicListRepository     { return fakeLists{u.db} }
func (u *fakeUoW) SectionRepository() contract.SectionRepository         { return fakeSections{u.db} }
func (u *fakeUoW) TopicRepository() contract.TopicRepository             { return fakeTopics{u.db} }

type fakeUsers struct{ db *fakeDB }

func userKeys(u entity.User) rowKeys { return rowKeys{id: u.Id, email: u.Email} }

func (r fakeUsers) Create(ctx context.Context, user *entity.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	r.db.users[user.Id] = *user
	return nil
}

func (r fakeUsers) Update(ctx context.Context, user *entity.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.users[user.Id] = *user
	return nil
}

func (r fakeUsers) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if matches(userKeys(u), specs) {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r fakeUsers) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var n int64
	for _, u := range r.db.users {
		if matches(userKeys(u), specs) {
			n++
		}
	}
	return n, nil
}

type fakeSessions struct{ db *fakeDB }

func sessionKeys(s entity.ChatSession) rowKeys { return rowKeys{id: s.Id, userId: s.UserId} }

func (r fakeSessions) Create(ctx context.Context, session *entity.ChatSession) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.sessions[session.Id] = *session
	return nil
}

func (r fakeSessions) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, s := range r.db.sessions {
		if matches(sessionKeys(s), specs) {
			cp := s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r fakeSessions) FindOneWithMessages(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	session, err := r.FindOne(ctx, specs...)
	if session == nil || err != nil {
		return session, err
	}
	session.Messages, _ = fakeMessages(r).FindAll(ctx, specification.BySessionID{SessionID: session.Id})
	return session, nil
}

func (r fakeSessions) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*entity.ChatSession
	for _, s := range r.db.sessions {
		if matches(sessionKeys(s), specs) {
			cp := s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakeMessages struct{ db *fakeDB }

func (r fakeMessages) Create(ctx context.Context, message *entity.ChatMessage) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.messages = append(r.db.messages, *message)
	return nil
}

func (r fakeMessages) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*entity.ChatMessage
	for _, m := range r.db.messages {
		if matches(rowKeys{id: m.Id, sessionId: m.SessionId}, specs) {
			cp := m
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeLists struct{ db *fakeDB }

func listKeys(l entity.TopicList) rowKeys { return rowKeys{id: l.Id, userId: l.UserId} }

func (r fakeLists) Create(ctx context.Context, list *entity.TopicList) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	cp := *list
	cp.Sections = nil
	r.db.lists[list.Id] = cp
	return nil
}

func (r fakeLists) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TopicList, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, l := range r.db.lists {
		if matches(listKeys(l), specs) {
			cp := l
			return &cp, nil
		}
	}
	return nil, nil
}

// sectionsOf must be called with the lock held.
func (r fakeLists) sectionsOf(listId uuid.UUID, withTopics bool) []*entity.Section {
	var out []*entity.Section
	for _, s := range r.db.sections {
		if s.TopicListId != listId {
			continue
		}
		cp := s
		if withTopics {
			cp.Topics = nil
			for _, t := range r.db.topics {
				if t.SectionId == s.Id {
					tc := t
					cp.Topics = append(cp.Topics, &tc)
				}
			}
			sort.Slice(cp.Topics, func(i, j int) bool { return cp.Topics[i].Position < cp.Topics[j].Position })
		}
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

func (r fakeLists) FindOneDetailed(ctx context.Context, specs ...specification.Specification) (*entity.TopicList, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, l := range r.db.lists {
		if matches(listKeys(l), specs) {
			cp := l
			cp.Sections = r.sectionsOf(l.Id, true)
			return &cp, nil
		}
	}
	return nil, nil
}

func (r fakeLists) FindAllWithSections(ctx context.Context, specs ...specification.Specification) ([]*entity.TopicList, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*entity.TopicList
	for _, l := range r.db.lists {
		if matches(listKeys(l), specs) {
			cp := l
			cp.Sections = r.sectionsOf(l.Id, false)
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r fakeLists) Delete(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var n int64
	for id, l := range r.db.lists {
		if matches(listKeys(l), specs) {
			delete(r.db.lists, id)
			n++
		}
	}
	return n, nil
}

type fakeSections struct{ db *fakeDB }

func (r fakeSections) Create(ctx context.Context, section *entity.Section) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	cp := *section
	cp.Topics = nil
	r.db.sections[section.Id] = cp
	return nil
}

func (r fakeSections) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Section, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*entity.Section
	for _, s := range r.db.sections {
		if matches(rowKeys{id: s.Id, topicListId: s.TopicListId}, specs) {
			cp := s
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeTopics struct{ db *fakeDB }

func (r fakeTopics) Create(ctx context.Context, topic *entity.Topic) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failTopicCreate != nil {
		return r.db.failTopicCreate
	}
	r.db.topics[topic.Id] = *topic
	return nil
}

func (r fakeTopics) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Topic, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, t := range r.db.topics {
		if matches(rowKeys{id: t.Id, sectionId: t.SectionId}, specs) {
			cp := t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r fakeTopics) MarkCompleted(ctx context.Context, topic *entity.Topic) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.markCompletedCalls++
	stored := r.db.topics[topic.Id]
	stored.Completed = true
	r.db.topics[topic.Id] = stored
	topic.Completed = true
	return nil
}

func (r fakeTopics) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var n int64
	for _, t := range r.db.topics {
		if matches(rowKeys{id: t.Id, sectionId: t.SectionId}, specs) {
			n++
		}
	}
	return n, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *fakePublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *fakePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.EventType()
	}
	return out
}

type fakeLLM struct {
	reply   string
	err     error
	prompts []string
	options llm.Options
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	f.prompts = append(f.prompts, history[len(history)-1].Content)
	f.options = llm.ApplyOptions(llm.Options{}, opts...)
	return f.reply, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}

func (f *fakeLLM) Close() error { return nil }

var nopLog = logger.NewNop()
