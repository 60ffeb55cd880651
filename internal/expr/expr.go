// Package expr Вычисление арифметических выражений.
// Допускаются только числа, операторы +-*/, скобки и пробелы - никакого
// выполнения произвольного кода. Любая другая входная строка отклоняется.
package expr

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"ledgerbot/internal/model/lederrors"
)

// allowedRegexp Проверка, что строка состоит только из допустимых символов.
var allowedRegexp = regexp.MustCompile(`^[0-9+\-*/(). ]+$`)

// IsExpression Быстрая проверка, похожа ли строка на вычислимое выражение
// (используется маршрутизатором команд для фолбэка-калькулятора).
func IsExpression(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && allowedRegexp.MatchString(s) && strings.ContainsAny(s, "0123456789")
}

// Evaluate Вычисление выражения. Возвращает ErrInvalidExpression
// для недопустимых символов, синтаксических ошибок и деления на ноль.
func Evaluate(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !allowedRegexp.MatchString(s) {
		return decimal.Zero, errors.Wrapf(lederrors.ErrInvalidExpression, "недопустимые символы в %q", s)
	}
	p := &parser{input: []rune(s)}
	res, err := p.parseSum()
	if err != nil {
		return decimal.Zero, err
	}
	p.skipSpaces()
	if p.pos != len(p.input) {
		return decimal.Zero, errors.Wrapf(lederrors.ErrInvalidExpression, "лишние символы с позиции %d", p.pos)
	}
	return res, nil
}

// parser Рекурсивный спуск по грамматике:
// sum  := prod (('+'|'-') prod)*
// prod := unary (('*'|'/') unary)*
// unary := ('-'|'+')* atom
// atom := число | '(' sum ')'
type parser struct {
	input []rune
	pos   int
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

// peek Текущий символ без продвижения (0 в конце строки).
func (p *parser) peek() rune {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) parseSum() (decimal.Decimal, error) {
	res, err := p.parseProd()
	if err != nil {
		return decimal.Zero, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			rhs, err := p.parseProd()
			if err != nil {
				return decimal.Zero, err
			}
			res = res.Add(rhs)
		case '-':
			p.pos++
			rhs, err := p.parseProd()
			if err != nil {
				return decimal.Zero, err
			}
			res = res.Sub(rhs)
		default:
			return res, nil
		}
	}
}

func (p *parser) parseProd() (decimal.Decimal, error) {
	res, err := p.parseUnary()
	if err != nil {
		return decimal.Zero, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			rhs, err := p.parseUnary()
			if err != nil {
				return decimal.Zero, err
			}
			res = res.Mul(rhs)
		case '/':
			p.pos++
			rhs, err := p.parseUnary()
			if err != nil {
				return decimal.Zero, err
			}
			if rhs.IsZero() {
				return decimal.Zero, errors.Wrap(lederrors.ErrInvalidExpression, "деление на ноль")
			}
			res = res.Div(rhs)
		default:
			return res, nil
		}
	}
}

func (p *parser) parseUnary() (decimal.Decimal, error) {
	switch p.peek() {
	case '-':
		p.pos++
		res, err := p.parseUnary()
		if err != nil {
			return decimal.Zero, err
		}
		return res.Neg(), nil
	case '+':
		p.pos++
		return p.parseUnary()
	}
	return p.parseAtom()
}

func (p *parser) parseAtom() (decimal.Decimal, error) {
	if p.peek() == '(' {
		p.pos++
		res, err := p.parseSum()
		if err != nil {
			return decimal.Zero, err
		}
		if p.peek() != ')' {
			return decimal.Zero, errors.Wrap(lederrors.ErrInvalidExpression, "не закрыта скобка")
		}
		p.pos++
		return res, nil
	}

	p.skipSpaces()
	start := p.pos
	for p.pos < len(p.input) && (isDigit(p.input[p.pos]) || p.input[p.pos] == '.') {
		p.pos++
	}
	if start == p.pos {
		return decimal.Zero, errors.Wrapf(lederrors.ErrInvalidExpression, "ожидалось число на позиции %d", start)
	}
	num, err := decimal.NewFromString(string(p.input[start:p.pos]))
	if err != nil {
		return decimal.Zero, errors.Wrapf(lederrors.ErrInvalidExpression, "некорректное число %q", string(p.input[start:p.pos]))
	}
	return num, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
