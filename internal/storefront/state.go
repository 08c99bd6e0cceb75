package storefront

import (
	"github.com/maxdeal/storefront/internal/catalog"
	"github.com/maxdeal/storefront/internal/chat"
)

// Page identifies one storefront surface. The core has no opinion on
// routing beyond the identifier set.
type Page string

const (
	PageHome      Page = "Home"
	PageShop      Page = "Shop"
	PageCart      Page = "Cart"
	PageCheckout  Page = "Checkout"
	PageAccount   Page = "Account"
	PageSell      Page = "Sell"
	PageBlog      Page = "Blog"
	PageSuccess   Page = "Success"
	PageTrack     Page = "Track"
	PageDashboard Page = "Dashboard"
)

// CartItem is one cart line: a catalog item and its quantity
type CartItem struct {
	catalog.Item
	Quantity int `json:"quantity"`
}

// State is the storefront's UI state, owned by exactly one controller
// and mutated only through its methods.
type State struct {
	Language       chat.Language
	Currency       Currency
	Page           Page
	ActiveCategory string
	Cart           []CartItem
}

// NewState returns the initial storefront state
func NewState() *State {
	return &State{
		Language:       chat.LanguageEnglish,
		Currency:       CurrencyEGP,
		Page:           PageHome,
		ActiveCategory: "All",
	}
}

// AddToCart adds one unit of an item, incrementing the quantity of an
// existing cart line rather than duplicating it
func (s *State) AddToCart(item catalog.Item) {
	for i := range s.Cart {
		if s.Cart[i].ID == item.ID {
			s.Cart[i].Quantity++
			return
		}
	}
	s.Cart = append(s.Cart, CartItem{Item: item, Quantity: 1})
}

// AddBundle adds one unit of every item in the bundle
func (s *State) AddBundle(items []catalog.Item) {
	for _, item := range items {
		s.AddToCart(item)
	}
}

// BuyNow replaces the entire cart with a single line for the item and
// navigates to checkout
func (s *State) BuyNow(item catalog.Item) {
	s.Cart = []CartItem{{Item: item, Quantity: 1}}
	s.Page = PageCheckout
}

// RemoveFromCart drops the cart line for the given item id
func (s *State) RemoveFromCart(id string) {
	kept := s.Cart[:0]
	for _, line := range s.Cart {
		if line.ID != id {
			kept = append(kept, line)
		}
	}
	s.Cart = kept
}

// UpdateQuantity adjusts a cart line's quantity by delta, never below one
func (s *State) UpdateQuantity(id string, delta int) {
	for i := range s.Cart {
		if s.Cart[i].ID == id {
			q := s.Cart[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			s.Cart[i].Quantity = q
			return
		}
	}
}

// Subtotal returns the cart total in base prices
func (s *State) Subtotal() float64 {
	var total float64
	for _, line := range s.Cart {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// NavigateToCategory switches to the shop page filtered to a category
func (s *State) NavigateToCategory(category string) {
	s.ActiveCategory = category
	s.Page = PageShop
}
