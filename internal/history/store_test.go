package history

import (
	"errors"
	"reflect"
	"testing"
)

// memStore 内存实现，测试核心逻辑用
type memStore struct {
	terms   []string
	loadErr error
	saveErr error
	saved   int
}

func (s *memStore) Load() ([]string, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.terms, nil
}

func (s *memStore) Save(terms []string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.terms = terms
	s.saved++
	return nil
}

func TestRecordMoveToFront(t *testing.T) {
	s := &memStore{terms: []string{"Inception", "Matrix", "Up"}}

	got := Record(s, "Matrix")
	want := []string{"Matrix", "Inception", "Up"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Record = %v, 期望 %v", got, want)
	}
	if !reflect.DeepEqual(s.terms, want) {
		t.Fatalf("存储未同步: %v", s.terms)
	}
}

func TestRecordNewTermPrepends(t *testing.T) {
	s := &memStore{terms: []string{"A", "B"}}

	got := Record(s, "C")
	if !reflect.DeepEqual(got, []string{"C", "A", "B"}) {
		t.Fatalf("Record = %v", got)
	}
}

func TestRecordCapAtSix(t *testing.T) {
	s := &memStore{terms: []string{"f", "e", "d", "c", "b", "a"}}

	got := Record(s, "g")
	if len(got) != MaxEntries {
		t.Fatalf("长度 = %d, 期望 %d", len(got), MaxEntries)
	}
	want := []string{"g", "f", "e", "d", "c", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Record = %v, 期望 %v（最旧的被截断）", got, want)
	}
}

func TestRecordBlankTermIsNoop(t *testing.T) {
	tests := []string{"", "   ", "\t\n"}
	for _, term := range tests {
		s := &memStore{terms: []string{"A"}}
		got := Record(s, term)
		if !reflect.DeepEqual(got, []string{"A"}) {
			t.Fatalf("空白关键词 %q 不应改变历史: %v", term, got)
		}
		if s.saved != 0 {
			t.Fatalf("空白关键词不应触发保存")
		}
	}
}

func TestRecordTrimsTerm(t *testing.T) {
	s := &memStore{}
	got := Record(s, "  Matrix  ")
	if !reflect.DeepEqual(got, []string{"Matrix"}) {
		t.Fatalf("关键词应去掉首尾空白: %v", got)
	}
}

func TestRecordSaveErrorSwallowed(t *testing.T) {
	s := &memStore{terms: []string{"A"}, saveErr: errors.New("session full")}

	// 保存失败只记日志，返回值仍是更新后的列表
	got := Record(s, "B")
	if !reflect.DeepEqual(got, []string{"B", "A"}) {
		t.Fatalf("Record = %v", got)
	}
}

func TestTermsLoadError(t *testing.T) {
	s := &memStore{loadErr: errors.New("corrupt session")}

	got := Terms(s)
	if got == nil || len(got) != 0 {
		t.Fatalf("读取失败应返回空列表非 nil: %v", got)
	}
}

func TestTermsNilBecomesEmpty(t *testing.T) {
	s := &memStore{terms: nil}

	got := Terms(s)
	if got == nil || len(got) != 0 {
		t.Fatalf("nil 历史应返回空列表非 nil: %v", got)
	}
}
