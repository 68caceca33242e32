// Package seed holds the initial content of the catalog and of the book
// shelf. Ids are left empty, the store assigns them on insertion.
package seed

import (
	scholarnexus "github.com/jayadityagandham/Scholar-Nexus"
)

// Resources returns a fresh copy of the initial resource catalog.
func Resources() []scholarnexus.Resource {
	return []scholarnexus.Resource{
		{
			Title:         "Machine Learning: A Probabilistic Perspective",
			Authors:       []string{"Kevin P. Murphy"},
			Type:          scholarnexus.ResourceTypeBook,
			Year:          2012,
			Publisher:     "MIT Press",
			Category:      []string{"Computer Science", "Artificial Intelligence", "Machine Learning"},
			Abstract:      "This textbook offers a comprehensive and self-contained introduction to the field of machine learning, a unified treatment of both popular statistical approaches and more recent methodology.",
			Access:        scholarnexus.AccessStudent,
			CitationCount: 9425,
		},
		{
			Title:         "Attention Is All You Need",
			Authors:       []string{"Ashish Vaswani", "Noam Shazeer", "Niki Parmar", "Jakob Uszkoreit", "Llion Jones", "Aidan N. Gomez", "Łukasz Kaiser", "Illia Polosukhin"},
			Type:          scholarnexus.ResourceTypePaper,
			Year:          2017,
			Journal:       "Advances in Neural Information Processing Systems",
			Category:      []string{"Computer Science", "Natural Language Processing", "Deep Learning"},
			Abstract:      "The dominant sequence transduction models are based on complex recurrent or convolutional neural networks that include an encoder and a decoder. The best performing models also connect the encoder and decoder through an attention mechanism. We propose a new simple network architecture, the Transformer, based solely on attention mechanisms, dispensing with recurrence and convolutions entirely.",
			Access:        scholarnexus.AccessOpen,
			CitationCount: 42891,
		},
		{
			Title:         "Introduction to Algorithms",
			Authors:       []string{"Thomas H. Cormen", "Charles E. Leiserson", "Ronald L. Rivest", "Clifford Stein"},
			Type:          scholarnexus.ResourceTypeBook,
			Year:          2009,
			Publisher:     "MIT Press",
			Category:      []string{"Computer Science", "Algorithms", "Data Structures"},
			Abstract:      "This internationally acclaimed textbook provides a comprehensive introduction to the modern study of computer algorithms. It covers a broad range of algorithms in depth, yet makes their design and analysis accessible to all levels of readers.",
			Access:        scholarnexus.AccessStudent,
			CitationCount: 67225,
		},
		{
			Title:         "Deep Learning",
			Authors:       []string{"Ian Goodfellow", "Yoshua Bengio", "Aaron Courville"},
			Type:          scholarnexus.ResourceTypeBook,
			Year:          2016,
			Publisher:     "MIT Press",
			Category:      []string{"Computer Science", "Artificial Intelligence", "Deep Learning"},
			Abstract:      "The Deep Learning textbook is a resource intended to help students and practitioners enter the field of machine learning in general and deep learning in particular.",
			Access:        scholarnexus.AccessOpen,
			CitationCount: 31072,
		},
		{
			Title:     "CS50: Introduction to Computer Science",
			Authors:   []string{"David J. Malan"},
			Type:      scholarnexus.ResourceTypeCourse,
			Year:      2023,
			Publisher: "Harvard University",
			Category:  []string{"Computer Science", "Programming", "Introduction"},
			Abstract:  "This is Harvard University's introduction to the intellectual enterprises of computer science and the art of programming, taught by Professor David J. Malan.",
			Access:    scholarnexus.AccessOpen,
		},
	}
}

// Books returns a fresh copy of the initial book shelf. All books start
// available.
func Books() []scholarnexus.Book {
	return []scholarnexus.Book{
		{
			Title:       "Introduction to Algorithms",
			Author:      "Thomas H. Cormen",
			CoverImage:  "https://m.media-amazon.com/images/I/41T0iBxY8FL._SX258_BO1,204,203,200_.jpg",
			Description: "A comprehensive introduction to the modern study of computer algorithms.",
			Categories:  []string{"Computer Science", "Algorithms"},
			Available:   true,
		},
		{
			Title:       "Design Patterns: Elements of Reusable Object-Oriented Software",
			Author:      "Erich Gamma, Richard Helm, Ralph Johnson, John Vlissides",
			CoverImage:  "https://m.media-amazon.com/images/I/51szD9HC9pL._SX395_BO1,204,203,200_.jpg",
			Description: "Capturing a wealth of experience about the design of object-oriented software.",
			Categories:  []string{"Software Engineering", "Object-Oriented Design"},
			Available:   true,
		},
		{
			Title:       "Clean Code: A Handbook of Agile Software Craftsmanship",
			Author:      "Robert C. Martin",
			CoverImage:  "https://m.media-amazon.com/images/I/51b7XbfMIIL._SX218_BO1,204,203,200_QL40_FMwebp_.jpg",
			Description: "A handbook of agile software craftsmanship that helps programmers write better code.",
			Categories:  []string{"Software Engineering", "Programming"},
			Available:   true,
		},
		{
			Title:       "The Pragmatic Programmer",
			Author:      "Andy Hunt, Dave Thomas",
			CoverImage:  "https://m.media-amazon.com/images/I/51W1sBPO7tL._SX380_BO1,204,203,200_.jpg",
			Description: "From journeyman to master - a guide to the characteristics, attitudes, and techniques of pragmatic programming.",
			Categories:  []string{"Software Engineering", "Programming"},
			Available:   true,
		},
		{
			Title:       "Artificial Intelligence: A Modern Approach",
			Author:      "Stuart Russell, Peter Norvig",
			CoverImage:  "https://m.media-amazon.com/images/I/51r+Sq96TYL._SX258_BO1,204,203,200_.jpg",
			Description: "The leading textbook in Artificial Intelligence, used in over 1500 universities worldwide.",
			Categories:  []string{"Computer Science", "Artificial Intelligence"},
			Available:   true,
		},
	}
}
